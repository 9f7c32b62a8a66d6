// Package session runs one play session: the player, blocks, enemies,
// bullets and hearts, advanced one fixed tick at a time.
package session

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/ninjarun/internal/application/state"
	"github.com/younwookim/ninjarun/internal/application/system"
	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
	"github.com/younwookim/ninjarun/internal/infrastructure/level"
)

// Heart HUD layout, in screen pixels from the screen centre.
const (
	heartX       = -100
	heartY       = -60
	heartSpacing = 20
)

// SettingsStore persists the bounce flag.
type SettingsStore interface {
	LoadBounce() bool
	SaveBounce(bounce bool) error
}

// Options configures a Session.
type Options struct {
	Config  *config.GameConfig
	Level   *level.Level
	Factory entity.VisualFactory
	Store   SettingsStore // optional
	Rand    *rand.Rand
	Logger  *log.Logger
}

// Session is the simulation state of one run.
type Session struct {
	cfg     *config.GameConfig
	level   *level.Level
	factory entity.VisualFactory
	store   SettingsStore
	logger  *log.Logger

	state      state.GameState
	frame      int
	player     *entity.Player
	camera     *system.Camera
	blocks     *entity.BlockMap
	controller *system.PlayerController
	enemies    *system.EnemyManager
	bullets    *system.BulletPool
	counters   system.Counters
	hearts     []entity.Visual

	bounce        bool
	enemiesActive bool
}

// New builds the level and spawns the player and the level's enemies.
func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Level == nil {
		return nil, fmt.Errorf("session: no level")
	}
	if opts.Factory == nil {
		return nil, fmt.Errorf("session: no visual factory")
	}
	if opts.Level.TileSize != cfg.World.TileSize {
		return nil, fmt.Errorf("session: level tile size %d does not match world.tileSize %d",
			opts.Level.TileSize, cfg.World.TileSize)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	blocks, err := opts.Level.BlockMap(cfg.World.MaxBlocks)
	if err != nil {
		return nil, fmt.Errorf("session: build blocks: %w", err)
	}
	for _, b := range blocks.All() {
		opts.Factory.Create(entity.KindBlock, b.Rect.CenterX(), b.Rect.CenterY())
	}

	s := &Session{
		cfg:        cfg,
		level:      opts.Level,
		factory:    opts.Factory,
		store:      opts.Store,
		logger:     logger,
		blocks:     blocks,
		controller: system.NewPlayerController(cfg.Player, cfg.World, blocks),
		enemies:    system.NewEnemyManager(cfg.Enemies, cfg.Session, cfg.World.GroundLevel, opts.Factory, rng, logger),
		bullets:    system.NewBulletPool(cfg.Bullets, cfg.World.GroundLevel, opts.Factory),
	}
	if s.store != nil {
		s.bounce = s.store.LoadBounce()
	}

	s.player = entity.NewPlayer(
		fixed.FromInt(opts.Level.PlayerSpawn.X),
		fixed.FromInt(opts.Level.PlayerSpawn.Y),
		fixed.FromInt(cfg.Player.Width),
		fixed.FromInt(cfg.Player.Height),
		opts.Factory.Create(entity.KindPlayer,
			fixed.FromInt(opts.Level.PlayerSpawn.X), fixed.FromInt(opts.Level.PlayerSpawn.Y)),
	)

	if err := s.reset(); err != nil {
		return nil, err
	}

	logger.Info("session started",
		"blocks", blocks.Len(), "enemies", s.enemies.Len(), "bounce", s.bounce)
	return s, nil
}

// reset puts everything but the blocks and the bounce flag back to the start
// of a run.
func (s *Session) reset() error {
	spawn := s.level.PlayerSpawn
	s.player.SetPosition(fixed.FromInt(spawn.X), fixed.FromInt(spawn.Y))
	s.player.VX, s.player.VY = 0, 0
	s.player.FacingRight = true
	s.player.Land()
	s.player.Visual.SetVisible(true)
	s.player.Visual.SetAnimation(entity.AnimRunRight)
	s.player.SyncVisual()

	s.camera = system.NewCamera(s.cfg.Camera)
	s.counters = system.Counters{FramesSinceLastHit: s.cfg.Session.InvincibilityFrames}
	s.enemiesActive = s.cfg.Session.EnemiesActive
	s.bullets.Reset()

	s.enemies.Clear()
	for _, e := range s.level.Enemies {
		t, ok := entity.ParseEnemyType(e.Name)
		if !ok {
			return fmt.Errorf("session: unknown enemy %q", e.Name)
		}
		enemy, err := s.enemies.Add(t, fixed.FromInt(e.X), fixed.FromInt(e.Y))
		if err != nil {
			return fmt.Errorf("session: spawn %s: %w", e.Name, err)
		}
		enemy.SetFacing(e.FacingRight)
	}

	for _, h := range s.hearts {
		h.Destroy()
	}
	s.hearts = s.hearts[:0]
	for i := 0; i < s.cfg.Session.Hearts; i++ {
		s.hearts = append(s.hearts, s.factory.Create(entity.KindHeart,
			fixed.FromInt(heartX+i*heartSpacing), fixed.FromInt(heartY)))
	}

	s.state = state.StatePlaying
	s.frame = 0
	return nil
}

// Tick advances the session by one frame.
func (s *Session) Tick(in system.InputState) {
	if s.state == state.StateGameOver {
		if in.Start {
			s.Restart()
		}
		return
	}

	if in.Start {
		s.enemiesActive = !s.enemiesActive
		s.logger.Info("enemies toggled", "active", s.enemiesActive)
	}
	if in.Select {
		s.toggleBounce()
	}

	s.controller.Update(s.player, in, s.bounce, s.camera)

	if in.Fire {
		s.bullets.Fire(s.player.X, s.player.Y, s.player.FacingRight)
	}
	s.bullets.Update()
	s.bullets.HitDetection(s.enemies, &s.counters)

	s.enemies.Respawn(s.player, s.camera.X, &s.counters)
	if s.enemiesActive {
		s.loseHearts(s.enemies.MoveToPlayer(s.player, &s.counters))
	}
	s.counters.Advance()
	s.updateBlink()

	s.frame++

	if len(s.hearts) == 0 {
		s.state = state.StateGameOver
		s.player.Visual.SetVisible(true)
		s.logger.Info("game over", "frames", s.frame)
	}
}

// Restart begins a new run on the same level.
func (s *Session) Restart() {
	if err := s.reset(); err != nil {
		// The level was already validated by New.
		s.logger.Error("restart failed", "error", err)
		return
	}
	s.logger.Info("session restarted")
}

func (s *Session) toggleBounce() {
	s.bounce = !s.bounce
	s.logger.Info("bounce toggled", "bounce", s.bounce)
	if s.store == nil {
		return
	}
	if err := s.store.SaveBounce(s.bounce); err != nil {
		s.logger.Warn("bounce setting not saved", "error", err)
	}
}

func (s *Session) loseHearts(n int) {
	for ; n > 0 && len(s.hearts) > 0; n-- {
		last := len(s.hearts) - 1
		s.hearts[last].Destroy()
		s.hearts = s.hearts[:last]
		s.logger.Info("player hurt", "hearts", len(s.hearts))
	}
}

// updateBlink flashes the player while the invincibility cooldown runs.
func (s *Session) updateBlink() {
	since := s.counters.FramesSinceLastHit
	visible := true
	if since < s.cfg.Session.InvincibilityFrames && s.cfg.Session.BlinkInterval > 0 {
		visible = (since/s.cfg.Session.BlinkInterval)%2 == 1
	}
	s.player.Visual.SetVisible(visible)
}

// State returns the current state.
func (s *Session) State() state.GameState { return s.state }

// Frame returns the number of ticks played in this run.
func (s *Session) Frame() int { return s.frame }

// Player returns the player.
func (s *Session) Player() *entity.Player { return s.player }

// Camera returns the camera.
func (s *Session) Camera() *system.Camera { return s.camera }

// Blocks returns the block map.
func (s *Session) Blocks() *entity.BlockMap { return s.blocks }

// Enemies returns the enemy manager.
func (s *Session) Enemies() *system.EnemyManager { return s.enemies }

// Bullets returns the bullet pool.
func (s *Session) Bullets() *system.BulletPool { return s.bullets }

// Hearts returns the remaining hearts.
func (s *Session) Hearts() int { return len(s.hearts) }

// Counters returns the respawn and invincibility counters.
func (s *Session) Counters() system.Counters { return s.counters }

// Bounce reports whether bounce mode is on.
func (s *Session) Bounce() bool { return s.bounce }

// EnemiesActive reports whether enemies chase the player.
func (s *Session) EnemiesActive() bool { return s.enemiesActive }
