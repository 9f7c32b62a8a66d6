package entity

import "github.com/younwookim/ninjarun/internal/domain/fixed"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Kind selects the sprite a visual handle is created from.
type Kind int

const (
	KindPlayer Kind = iota
	KindBlock
	KindDino
	KindTurtle
	KindBullet
	KindHeart
)

// String returns the sprite name of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "ninja"
	case KindBlock:
		return "block"
	case KindDino:
		return "dino"
	case KindTurtle:
		return "turtle"
	case KindBullet:
		return "rocket"
	case KindHeart:
		return "head"
	default:
		return "unknown"
	}
}

// WorldSpace reports whether the kind scrolls with the camera. Hearts are HUD.
func (k Kind) WorldSpace() bool {
	return k != KindHeart
}

// Animation is an animation state of a visual.
type Animation int

const (
	AnimNone Animation = iota
	AnimRunRight
	AnimRunLeft
	AnimDinoWalk
	AnimTurtleWalk
)

// Visual is a handle to something the renderer draws. The simulation only
// positions, flips, scales and animates it.
type Visual interface {
	SetPosition(x, y fixed.Fixed)
	SetVisible(visible bool)
	SetHorizontalFlip(flip bool)
	SetScale(scale float64)
	SetAnimation(anim Animation)
	ShapeHalfWidth() int
	HorizontalScale() float64
	Destroy()
}

// VisualFactory creates visual handles.
type VisualFactory interface {
	Create(kind Kind, x, y fixed.Fixed) Visual
}
