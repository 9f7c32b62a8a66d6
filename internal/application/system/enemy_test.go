package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
	"github.com/younwookim/ninjarun/internal/infrastructure/logging"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func newTestEnemyManager(mutate func(*config.EnemiesConfig)) (*EnemyManager, *stubFactory) {
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg.Enemies)
	}
	factory := &stubFactory{}
	m := NewEnemyManager(cfg.Enemies, cfg.Session, cfg.World.GroundLevel, factory, testRNG(), logging.Discard())
	return m, factory
}

func newCounters() *Counters {
	return &Counters{FramesSinceLastHit: config.Default().Session.InvincibilityFrames}
}

func assertNoOverlaps(t *testing.T, m *EnemyManager, p *entity.Player) {
	t.Helper()
	enemies := m.Enemies()
	for i, a := range enemies {
		assert.False(t, a.Circle().Overlaps(p.Circle()), "enemy %d overlaps player", a.ID)
		for _, b := range enemies[i+1:] {
			assert.False(t, a.Circle().Overlaps(b.Circle()), "enemies %d and %d overlap", a.ID, b.ID)
		}
	}
}

func TestEnemyManager_Add(t *testing.T) {
	m, _ := newTestEnemyManager(nil)

	dino, err := m.Add(entity.EnemyDino, fx(-100), fx(64))
	require.NoError(t, err)
	assert.Equal(t, fx(60), dino.Y, "dino offset applied")
	assert.Equal(t, 3, dino.HitPoints)
	assert.Equal(t, 0.5, dino.Visual.HorizontalScale())

	turtle, err := m.Add(entity.EnemyTurtle, fx(100), fx(64))
	require.NoError(t, err)
	assert.Equal(t, fx(64), turtle.Y)
	assert.NotEqual(t, dino.ID, turtle.ID)

	_, err = m.Add(entity.EnemyTurtle, fx(200), fx(64))
	assert.ErrorIs(t, err, entity.ErrCapacityExceeded)
	assert.Equal(t, 2, m.Len())
}

func TestEnemyManager_MoveToPlayer(t *testing.T) {
	m, _ := newTestEnemyManager(nil)
	p := newTestPlayer(0, 64)
	left, _ := m.Add(entity.EnemyDino, fx(-100), fx(64))
	right, _ := m.Add(entity.EnemyTurtle, fx(100), fx(64))

	damage := m.MoveToPlayer(p, newCounters())

	assert.Equal(t, 0, damage)
	assert.Equal(t, fx(-99), left.X)
	assert.True(t, left.FacingRight)
	assert.Equal(t, fx(99), right.X)
	assert.False(t, right.FacingRight)
	assert.Equal(t, fx(99), right.Visual.(*stubVisual).x, "visual follows")
}

func TestEnemyManager_NeverOverlaps(t *testing.T) {
	m, _ := newTestEnemyManager(nil)
	p := newTestPlayer(0, 64)
	_, _ = m.Add(entity.EnemyDino, fx(-100), fx(64))
	_, _ = m.Add(entity.EnemyTurtle, fx(40), fx(64))
	c := newCounters()

	for tick := 0; tick < 300; tick++ {
		m.MoveToPlayer(p, c)
		assertNoOverlaps(t, m, p)
	}

	// Both enemies end up resting against the player.
	enemies := m.Enemies()
	assert.Equal(t, fx(-16), enemies[0].X)
	assert.Equal(t, fx(16), enemies[1].X)
}

func TestEnemyManager_ContactDamageCooldown(t *testing.T) {
	m, _ := newTestEnemyManager(nil)
	p := newTestPlayer(0, 64)
	e, _ := m.Add(entity.EnemyTurtle, fx(16), fx(64))
	c := newCounters()
	tick := func() int {
		damage := m.MoveToPlayer(p, c)
		c.Advance()
		return damage
	}

	assert.Equal(t, 1, tick(), "first contact hurts")
	assert.Equal(t, fx(16), e.X, "step into the player is not taken")
	assert.Equal(t, 1, c.FramesSinceLastHit)

	hurt := 0
	for i := 0; i < 59; i++ {
		hurt += tick()
	}
	assert.Equal(t, 0, hurt, "invincible during cooldown")

	assert.Equal(t, 1, tick(), "cooldown elapsed")
}

func TestCounters_AdvanceIsSeparateFromMovement(t *testing.T) {
	m, _ := newTestEnemyManager(nil)
	p := newTestPlayer(0, 64)
	_, _ = m.Add(entity.EnemyTurtle, fx(100), fx(64))
	c := &Counters{FramesSinceLastHit: 5}

	m.MoveToPlayer(p, c)
	assert.Equal(t, 5, c.FramesSinceLastHit, "moving enemies does not run the cooldown")

	c.Advance()
	assert.Equal(t, 6, c.FramesSinceLastHit)
}

func TestEnemyManager_Respawn(t *testing.T) {
	m, factory := newTestEnemyManager(nil)
	p := newTestPlayer(0, 64)
	c := newCounters()

	for i := 0; i < 120; i++ {
		m.Respawn(p, fx(0), c)
	}
	assert.Equal(t, 0, m.Len(), "threshold not yet exceeded")
	assert.Equal(t, 120, c.FramesBeforeRespawn)

	m.Respawn(p, fx(0), c)
	require.Equal(t, 1, m.Len())
	assert.Equal(t, 0, c.FramesBeforeRespawn, "timer resets on spawn")
	assert.Equal(t, 1, factory.live())

	spawned := m.Enemies()[0]
	assert.LessOrEqual(t, spawned.X.Abs(), fx(120), "within spawn range of the camera")
	assertNoOverlaps(t, m, p)
}

func TestEnemyManager_RespawnCap(t *testing.T) {
	m, _ := newTestEnemyManager(nil)
	p := newTestPlayer(0, 64)
	_, _ = m.Add(entity.EnemyDino, fx(-100), fx(64))
	_, _ = m.Add(entity.EnemyTurtle, fx(100), fx(64))
	c := newCounters()

	for i := 0; i < 500; i++ {
		m.Respawn(p, fx(0), c)
	}

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 500, c.FramesBeforeRespawn)
}

func TestEnemyManager_RespawnDeferred(t *testing.T) {
	m, factory := newTestEnemyManager(func(cfg *config.EnemiesConfig) {
		cfg.SpawnRange = 0
	})
	p := newTestPlayer(0, 64)
	c := &Counters{FramesBeforeRespawn: 120}

	m.Respawn(p, fx(0), c)

	assert.Equal(t, 0, m.Len(), "every roll lands on the player")
	assert.Equal(t, 121, c.FramesBeforeRespawn, "timer keeps running so the next tick retries")
	assert.Equal(t, 0, factory.live(), "unplaced visual is released")

	p.X = fx(200)
	m.Respawn(p, fx(0), c)
	assert.Equal(t, 1, m.Len(), "spawns once the spot is free")
}

func TestEnemyManager_RespawnDeterministic(t *testing.T) {
	spawnType := func() entity.EnemyType {
		m, _ := newTestEnemyManager(nil)
		c := &Counters{FramesBeforeRespawn: 120}
		m.Respawn(newTestPlayer(0, 64), fx(0), c)
		require.Equal(t, 1, m.Len())
		return m.Enemies()[0].Type
	}

	assert.Equal(t, spawnType(), spawnType())
}

func TestEnemyManager_DamageAndClear(t *testing.T) {
	m, factory := newTestEnemyManager(nil)
	e, _ := m.Add(entity.EnemyDino, fx(50), fx(64))
	_, _ = m.Add(entity.EnemyTurtle, fx(-50), fx(64))
	c := &Counters{FramesBeforeRespawn: 30}

	m.Damage(e, c)
	m.Damage(e, c)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 30, c.FramesBeforeRespawn)

	m.Damage(e, c)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 0, c.FramesBeforeRespawn)
	assert.Equal(t, entity.EnemyTurtle, m.Enemies()[0].Type)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, factory.live())
}
