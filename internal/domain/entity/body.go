package entity

import "github.com/younwookim/ninjarun/internal/domain/fixed"

// Body is the physical state shared by the player and enemies.
// X and Y are the centre of the bounding rect.
type Body struct {
	X, Y   fixed.Fixed
	VX, VY fixed.Fixed
	W, H   fixed.Fixed

	Grounded    bool
	FacingRight bool
}

// Rect returns the bounding rect at the current position.
func (b *Body) Rect() Rect {
	return RectFromCenter(b.X, b.Y, b.W, b.H)
}

// SetPosition moves the centre to (x, y).
func (b *Body) SetPosition(x, y fixed.Fixed) {
	b.X = x
	b.Y = y
}

// Integrate adds the velocity to the position.
func (b *Body) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// Circle returns the collision circle of a body drawn with v.
// The radius is the sprite half width times its horizontal scale.
func (b *Body) Circle(v Visual) Circle {
	return CircleOf(b.X, b.Y, v)
}

// Circle is a collision circle.
type Circle struct {
	X, Y fixed.Fixed
	R    fixed.Fixed
}

// CircleOf builds the collision circle of a sprite centred on (x, y).
func CircleOf(x, y fixed.Fixed, v Visual) Circle {
	r := fixed.FromInt(v.ShapeHalfWidth()).Mul(fixed.FromFloat(v.HorizontalScale()))
	return Circle{X: x, Y: y, R: r}
}

// Overlaps compares squared distance with the squared radius sum, so no
// square root is taken.
func (c Circle) Overlaps(o Circle) bool {
	reach := c.R + o.R
	dx := o.X - c.X
	dy := o.Y - c.Y
	return dx.Mul(dx)+dy.Mul(dy) < reach.Mul(reach)
}
