package system

import (
	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
)

// BulletPool is a fixed set of reusable bullet slots.
type BulletPool struct {
	bullets     []entity.Bullet
	speed       fixed.Fixed
	maxDistance fixed.Fixed
}

// NewBulletPool creates cfg.MaxBullets hidden slots.
func NewBulletPool(cfg config.BulletsConfig, groundLevel int, factory entity.VisualFactory) *BulletPool {
	pool := &BulletPool{
		bullets:     make([]entity.Bullet, cfg.MaxBullets),
		speed:       fixed.FromFloat(cfg.Speed),
		maxDistance: fixed.FromInt(cfg.MaxDistance),
	}
	for i := range pool.bullets {
		v := factory.Create(entity.KindBullet, 0, fixed.FromInt(groundLevel))
		v.SetScale(cfg.Scale)
		v.SetVisible(false)
		pool.bullets[i].Visual = v
	}
	return pool
}

// Bullets returns the slots.
func (p *BulletPool) Bullets() []entity.Bullet {
	return p.bullets
}

// Active returns the number of bullets in flight.
func (p *BulletPool) Active() int {
	n := 0
	for i := range p.bullets {
		if p.bullets[i].Active {
			n++
		}
	}
	return n
}

// Fire launches the first free slot from (x, y). It reports false when every
// slot is in flight.
func (p *BulletPool) Fire(x, y fixed.Fixed, right bool) bool {
	for i := range p.bullets {
		b := &p.bullets[i]
		if b.Active {
			continue
		}
		b.Fire(x, y, right, p.speed)
		return true
	}
	return false
}

// Update moves every bullet and expires those out of range.
func (p *BulletPool) Update() {
	for i := range p.bullets {
		p.bullets[i].Update(p.maxDistance)
	}
}

// HitDetection tests every active bullet against the enemy population. A
// bullet stops at the first enemy it overlaps, in population order, and that
// enemy takes one hit.
func (p *BulletPool) HitDetection(enemies *EnemyManager, c *Counters) int {
	hits := 0
	for i := range p.bullets {
		b := &p.bullets[i]
		if !b.Active {
			continue
		}

		circle := b.Circle()
		for _, e := range enemies.Enemies() {
			if !circle.Overlaps(e.Circle()) {
				continue
			}
			b.Deactivate()
			enemies.Damage(e, c)
			hits++
			break
		}
	}
	return hits
}

// Reset frees every slot.
func (p *BulletPool) Reset() {
	for i := range p.bullets {
		p.bullets[i].Deactivate()
	}
}
