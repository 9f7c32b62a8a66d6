package main

import (
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/ninjarun/internal/application/system"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
	"github.com/younwookim/ninjarun/internal/infrastructure/level"
	"github.com/younwookim/ninjarun/internal/infrastructure/logging"
)

// assets is everything a run needs from the config directory.
type assets struct {
	cfg   *config.GameConfig
	level *level.Level
}

// configLoader returns a loader over --config, or over the embedded configs.
func configLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadAssets reads game.yaml and the named level. A Tiled map
// (levels/<name>.tmx) wins over a YAML stage of the same name.
func loadAssets(loader *config.Loader, name string) (*assets, error) {
	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, err
	}

	lvl, err := loadLevel(loader, name)
	if err != nil {
		return nil, err
	}
	return &assets{cfg: cfg, level: lvl}, nil
}

func loadLevel(loader *config.Loader, name string) (*level.Level, error) {
	tmx := "levels/" + name + ".tmx"
	if loader.HasFile(tmx) {
		return level.LoadTMX(loader.FS(), tmx)
	}

	stage, err := loader.LoadStage(name)
	if err != nil {
		return nil, err
	}
	return system.LoadStage(stage)
}

func newLogger(w io.Writer, cfg *config.GameConfig) *log.Logger {
	lvl := cfg.Logging.Level
	if flagLogLevel != "" {
		lvl = flagLogLevel
	}
	return logging.New(w, lvl)
}

func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// fixedBounce replays a recorded bounce flag without touching the save.
type fixedBounce bool

func (b fixedBounce) LoadBounce() bool    { return bool(b) }
func (fixedBounce) SaveBounce(bool) error { return nil }
