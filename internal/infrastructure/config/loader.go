package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadGame loads game.yaml on top of Default. Keys missing from the file keep
// their default values.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.yaml: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.yaml: %w", err)
	}

	return cfg, nil
}

// LoadStage loads a level YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "levels/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}

	return &cfg, nil
}

// HasFile reports whether path exists in the loader's filesystem.
func (l *Loader) HasFile(path string) bool {
	_, err := fs.Stat(l.fsys, path)
	return err == nil
}

// Validate rejects values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	var errs []error

	if c.World.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("world.tileSize must be positive, got %d", c.World.TileSize))
	}
	if c.World.MaxBlocks <= 0 {
		errs = append(errs, fmt.Errorf("world.maxBlocks must be positive, got %d", c.World.MaxBlocks))
	}
	if c.Enemies.MaxEnemies < 0 {
		errs = append(errs, fmt.Errorf("enemies.maxEnemies must not be negative, got %d", c.Enemies.MaxEnemies))
	}
	if c.Enemies.HitPoints <= 0 {
		errs = append(errs, fmt.Errorf("enemies.hitPoints must be positive, got %d", c.Enemies.HitPoints))
	}
	if c.Enemies.MaxPlacementAttempts <= 0 {
		errs = append(errs, fmt.Errorf("enemies.maxPlacementAttempts must be positive, got %d", c.Enemies.MaxPlacementAttempts))
	}
	if c.Bullets.MaxBullets < 0 {
		errs = append(errs, fmt.Errorf("bullets.maxBullets must not be negative, got %d", c.Bullets.MaxBullets))
	}
	if c.Session.Hearts <= 0 {
		errs = append(errs, fmt.Errorf("session.hearts must be positive, got %d", c.Session.Hearts))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}

	return errors.Join(errs...)
}
