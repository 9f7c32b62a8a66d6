package entity

import "github.com/younwookim/ninjarun/internal/domain/fixed"

// Player is the player actor.
type Player struct {
	Body

	FramesSinceGround int
	Visual            Visual
}

// NewPlayer creates a grounded, right-facing player centred on (x, y).
func NewPlayer(x, y, w, h fixed.Fixed, visual Visual) *Player {
	p := &Player{
		Body: Body{
			X:           x,
			Y:           y,
			W:           w,
			H:           h,
			Grounded:    true,
			FacingRight: true,
		},
		Visual: visual,
	}
	if visual != nil {
		visual.SetAnimation(AnimRunRight)
		p.SyncVisual()
	}
	return p
}

// CanJump reports whether a jump is honoured: on the ground, or within grace
// frames of leaving it.
func (p *Player) CanJump(grace int) bool {
	return p.Grounded || p.FramesSinceGround < grace
}

// Land marks the player as resting on a surface.
func (p *Player) Land() {
	p.Grounded = true
	p.FramesSinceGround = 0
}

// Circle returns the player's collision circle.
func (p *Player) Circle() Circle {
	return p.Body.Circle(p.Visual)
}

// SyncVisual moves the visual to the body position.
func (p *Player) SyncVisual() {
	if p.Visual != nil {
		p.Visual.SetPosition(p.X, p.Y)
	}
}
