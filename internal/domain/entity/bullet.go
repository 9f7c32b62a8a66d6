package entity

import "github.com/younwookim/ninjarun/internal/domain/fixed"

// Bullet is one reusable projectile slot. Active=false marks a free slot.
type Bullet struct {
	Active bool
	X, Y   fixed.Fixed
	StartX fixed.Fixed
	VX     fixed.Fixed
	Visual Visual
}

// Fire launches the bullet from (x, y). It does nothing if the slot is
// already in flight.
func (b *Bullet) Fire(x, y fixed.Fixed, right bool, speed fixed.Fixed) {
	if b.Active {
		return
	}

	b.Active = true
	b.X = x
	b.Y = y
	b.StartX = x
	if right {
		b.VX = speed
	} else {
		b.VX = -speed
	}

	if b.Visual != nil {
		b.Visual.SetVisible(true)
		b.Visual.SetHorizontalFlip(!right)
		b.Visual.SetPosition(x, y)
	}
}

// Update moves the bullet and frees the slot once it has travelled farther
// than maxDistance from its launch point.
func (b *Bullet) Update(maxDistance fixed.Fixed) {
	if !b.Active {
		return
	}

	b.X += b.VX
	if b.Visual != nil {
		b.Visual.SetPosition(b.X, b.Y)
	}

	if (b.X - b.StartX).Abs() > maxDistance {
		b.Deactivate()
	}
}

// Deactivate frees the slot.
func (b *Bullet) Deactivate() {
	b.Active = false
	if b.Visual != nil {
		b.Visual.SetVisible(false)
	}
}

// Circle returns the bullet's collision circle.
func (b *Bullet) Circle() Circle {
	return CircleOf(b.X, b.Y, b.Visual)
}
