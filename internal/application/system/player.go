package system

import (
	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
)

// PlayerController moves the player one tick at a time.
type PlayerController struct {
	speed         fixed.Fixed
	jumpVelocity  fixed.Fixed
	gravity       fixed.Fixed
	airResistance fixed.Fixed
	bounceFactor  fixed.Fixed
	minBounce     fixed.Fixed
	jumpGrace     int
	groundLevel   fixed.Fixed

	blocks *entity.BlockMap
}

// NewPlayerController creates a controller colliding against blocks.
func NewPlayerController(cfg config.PlayerConfig, world config.WorldConfig, blocks *entity.BlockMap) *PlayerController {
	return &PlayerController{
		speed:         fixed.FromFloat(cfg.Speed),
		jumpVelocity:  fixed.FromFloat(cfg.JumpVelocity),
		gravity:       fixed.FromFloat(cfg.Gravity),
		airResistance: fixed.FromFloat(cfg.AirResistance),
		bounceFactor:  fixed.FromFloat(cfg.BounceFactor),
		minBounce:     fixed.FromFloat(cfg.MinBounceVelocity),
		jumpGrace:     cfg.JumpGraceFrames,
		groundLevel:   fixed.FromInt(world.GroundLevel),
		blocks:        blocks,
	}
}

// GroundLevel returns the y of the ground plane.
func (c *PlayerController) GroundLevel() fixed.Fixed {
	return c.groundLevel
}

// Update applies input, gravity, collision, camera follow, facing and the
// ground plane to the player, in that order.
func (c *PlayerController) Update(p *entity.Player, in InputState, bounce bool, cam *Camera) {
	switch {
	case in.Left:
		p.VX = -c.speed
	case in.Right:
		p.VX = c.speed
	case p.Grounded:
		p.VX = 0
	default:
		p.VX = p.VX.Mul(c.airResistance)
	}

	if in.Jump && p.CanJump(c.jumpGrace) {
		p.VY = c.jumpVelocity
		p.Grounded = false
	}

	if !p.Grounded {
		p.VY += c.gravity
		p.FramesSinceGround++
	}

	prev := p.Rect()
	p.Integrate()

	if c.blocks != nil && ResolveBlocks(&p.Body, prev, c.blocks) {
		p.Land()
	} else if p.Y < c.groundLevel {
		p.Grounded = false
	}

	if cam != nil {
		cam.Follow(p.X, p.Y)
	}

	c.updateFacing(p)
	c.applyGround(p, bounce)
	p.SyncVisual()
}

func (c *PlayerController) updateFacing(p *entity.Player) {
	if p.VX == 0 {
		return
	}
	right := p.VX > 0
	if right == p.FacingRight {
		return
	}

	p.FacingRight = right
	if p.Visual == nil {
		return
	}
	if right {
		p.Visual.SetAnimation(entity.AnimRunRight)
	} else {
		p.Visual.SetAnimation(entity.AnimRunLeft)
	}
}

func (c *PlayerController) applyGround(p *entity.Player, bounce bool) {
	if p.Y < c.groundLevel {
		return
	}

	p.Y = c.groundLevel
	if bounce && p.VY.Abs() > c.minBounce {
		p.VY = p.VY.Neg().Mul(c.bounceFactor)
		return
	}
	p.VY = 0
	p.Land()
}
