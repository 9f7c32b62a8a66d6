package system

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
)

// Counters are the per-session frame counters shared by the enemy and bullet
// systems.
type Counters struct {
	FramesBeforeRespawn int
	FramesSinceLastHit  int
}

// Advance counts one tick toward the end of the invincibility cooldown. It
// runs every tick whether or not enemies are moving.
func (c *Counters) Advance() {
	c.FramesSinceLastHit++
}

// EnemyManager owns the enemy population. It spawns enemies around the
// camera, walks them toward the player and applies damage both ways.
type EnemyManager struct {
	capacity      int
	hitPoints     int
	respawnFrames int
	spawnRange    int
	maxAttempts   int
	step          fixed.Fixed
	scale         float64
	invincibility int
	groundY       fixed.Fixed

	factory entity.VisualFactory
	rng     *rand.Rand
	logger  *log.Logger

	enemies []*entity.Enemy
	nextID  entity.EntityID
}

// NewEnemyManager creates an empty population.
func NewEnemyManager(
	cfg config.EnemiesConfig,
	session config.SessionConfig,
	groundLevel int,
	factory entity.VisualFactory,
	rng *rand.Rand,
	logger *log.Logger,
) *EnemyManager {
	return &EnemyManager{
		capacity:      cfg.MaxEnemies,
		hitPoints:     cfg.HitPoints,
		respawnFrames: cfg.RespawnFrames,
		spawnRange:    cfg.SpawnRange,
		maxAttempts:   cfg.MaxPlacementAttempts,
		step:          fixed.FromFloat(cfg.StepSize),
		scale:         cfg.Scale,
		invincibility: session.InvincibilityFrames,
		groundY:       fixed.FromInt(groundLevel),
		factory:       factory,
		rng:           rng,
		logger:        logger,
		enemies:       make([]*entity.Enemy, 0, cfg.MaxEnemies),
	}
}

// Enemies returns the live population in spawn order.
func (m *EnemyManager) Enemies() []*entity.Enemy {
	return m.enemies
}

// Len returns the population size.
func (m *EnemyManager) Len() int {
	return len(m.enemies)
}

// Add places an enemy of type t at (x, y) without any overlap check. It is
// used for the initial population.
func (m *EnemyManager) Add(t entity.EnemyType, x, y fixed.Fixed) (*entity.Enemy, error) {
	if len(m.enemies) >= m.capacity {
		return nil, fmt.Errorf("add %s: %w (max %d)", t, entity.ErrCapacityExceeded, m.capacity)
	}
	e := m.create(t, x, y)
	m.enemies = append(m.enemies, e)
	return e, nil
}

func (m *EnemyManager) create(t entity.EnemyType, x, y fixed.Fixed) *entity.Enemy {
	m.nextID++
	v := m.factory.Create(t.Kind(), x, y+t.OffsetY())
	v.SetScale(m.scale)
	return entity.NewEnemy(m.nextID, t, x, y, m.hitPoints, v)
}

// Respawn advances the respawn timer and, once it exceeds the threshold and
// the population has room, spawns one enemy of a random type at a random x
// near the camera that overlaps neither the player nor another enemy.
// Placement gives up after maxAttempts rolls; the spawn is then retried on
// the next tick.
func (m *EnemyManager) Respawn(p *entity.Player, cameraX fixed.Fixed, c *Counters) {
	c.FramesBeforeRespawn++
	if len(m.enemies) >= m.capacity || c.FramesBeforeRespawn <= m.respawnFrames {
		return
	}

	t := entity.EnemyTypes[m.rng.Intn(len(entity.EnemyTypes))]
	e := m.create(t, cameraX, m.groundY)

	playerCircle := p.Circle()
	for attempt := 0; attempt < m.maxAttempts; attempt++ {
		offset := m.rng.Intn(2*m.spawnRange+1) - m.spawnRange
		e.X = cameraX + fixed.FromInt(offset)

		circle := e.Circle()
		if circle.Overlaps(playerCircle) || m.overlapsEnemy(e, circle) {
			continue
		}

		e.SyncVisual()
		m.enemies = append(m.enemies, e)
		c.FramesBeforeRespawn = 0
		m.logger.Debug("enemy spawned", "id", e.ID, "type", t, "x", e.X, "attempts", attempt+1)
		return
	}

	e.Visual.Destroy()
	m.logger.Debug("spawn deferred, no free position", "type", t, "attempts", m.maxAttempts)
}

// MoveToPlayer steps every enemy one unit toward the player. A step that
// would overlap the player or another enemy is not taken. Touching the player
// outside the invincibility window costs one heart; the number of hearts lost
// is returned.
func (m *EnemyManager) MoveToPlayer(p *entity.Player, c *Counters) int {
	damage := 0
	playerCircle := p.Circle()

	for _, e := range m.enemies {
		e.Face(p.X)

		candidate := e.X + m.step.MulInt((p.X - e.X).Sign())
		circle := e.CircleAt(candidate)

		hitsPlayer := circle.Overlaps(playerCircle)
		if hitsPlayer && c.FramesSinceLastHit >= m.invincibility {
			damage++
			c.FramesSinceLastHit = 0
			m.logger.Debug("player hit", "enemy", e.ID)
		}
		if hitsPlayer || m.overlapsEnemy(e, circle) {
			continue
		}

		e.X = candidate
		e.SyncVisual()
	}

	return damage
}

// Damage applies one hit to e. At zero hit points the enemy is removed and
// the respawn timer re-arms immediately.
func (m *EnemyManager) Damage(e *entity.Enemy, c *Counters) {
	if !e.TakeHit() {
		return
	}

	m.remove(e)
	c.FramesBeforeRespawn = 0
	m.logger.Info("enemy defeated", "id", e.ID, "type", e.Type)
}

// Clear removes every enemy.
func (m *EnemyManager) Clear() {
	for _, e := range m.enemies {
		e.Visual.Destroy()
	}
	m.enemies = m.enemies[:0]
}

func (m *EnemyManager) remove(target *entity.Enemy) {
	for i, e := range m.enemies {
		if e != target {
			continue
		}
		e.Visual.Destroy()
		m.enemies = append(m.enemies[:i], m.enemies[i+1:]...)
		return
	}
}

func (m *EnemyManager) overlapsEnemy(self *entity.Enemy, circle entity.Circle) bool {
	for _, other := range m.enemies {
		if other == self {
			continue
		}
		if circle.Overlaps(other.Circle()) {
			return true
		}
	}
	return false
}
