package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/ninjarun/internal/application/game"
	"github.com/younwookim/ninjarun/internal/application/scene/playing"
	"github.com/younwookim/ninjarun/internal/application/session"
	"github.com/younwookim/ninjarun/internal/application/system"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
	"github.com/younwookim/ninjarun/internal/infrastructure/persistence"
	"github.com/younwookim/ninjarun/internal/infrastructure/render"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a window and play",
	Long: `Open a window and play the selected level.

With --record every tick's input is written to a replay file on game over,
on F5 and when the window closes. Replays can be checked with "ninjarun sim".`,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().StringVar(&flagRecord, "record", "", "Record input to a replay file")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	loader, err := configLoader(flagConfigDir)
	if err != nil {
		return err
	}
	a, err := loadAssets(loader, flagLevel)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, a.cfg)
	display := a.cfg.Display

	registry := render.NewRegistry(a.cfg.Sprites)
	renderer, err := render.NewRenderer(registry, a.cfg.Sprites, display.ScreenWidth, display.ScreenHeight)
	if err != nil {
		return err
	}

	rng, seed := newRand(flagSeed)
	opts := session.Options{
		Config:  a.cfg,
		Level:   a.level,
		Factory: registry,
		Rand:    rng,
		Logger:  logger,
	}
	if store, err := persistence.OpenGData(a.cfg.Persistence.AppName, logger); err != nil {
		logger.Warn("save data unavailable, bounce will not persist", "error", err)
	} else {
		opts.Store = store
	}

	s, err := session.New(opts)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	var rec *playing.Recorder
	if flagRecord != "" {
		rec = playing.NewRecorder(seed, flagLevel, s.Bounce())
	}

	scn := playing.New(playing.Options{
		Session:    s,
		Input:      system.NewInputSystem(system.DefaultKeyBindings()),
		Registry:   registry,
		Renderer:   renderer,
		Logger:     logger,
		Recorder:   rec,
		RecordPath: flagRecord,
		GroundTop:  groundTop(a.cfg),
		ShowStatus: logger.GetLevel() <= log.DebugLevel,
	})

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	logger.Info("starting", "level", flagLevel, "seed", seed)
	return ebiten.RunGame(game.New(scn, display.ScreenWidth, display.ScreenHeight))
}

// groundTop is the top edge of the ground plane: the player's centre rests
// half a body above it.
func groundTop(cfg *config.GameConfig) fixed.Fixed {
	return fixed.FromInt(cfg.World.GroundLevel + cfg.Player.Height/2)
}
