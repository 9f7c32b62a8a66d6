package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 240, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 16, cfg.World.TileSize)
	assert.Equal(t, 64, cfg.World.GroundLevel)
	assert.Equal(t, -10.0, cfg.Player.JumpVelocity)
	assert.Equal(t, 0.75, cfg.Player.BounceFactor)
	assert.Equal(t, 2, cfg.Enemies.MaxEnemies)
	assert.Equal(t, 100, cfg.Bullets.MaxDistance)
	assert.Equal(t, 3, cfg.Session.Hearts)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 16, cfg.TileSize)
	assert.Equal(t, -1, cfg.Origin.X)
	assert.Equal(t, -2, cfg.Origin.Y)
	assert.Len(t, cfg.Layers.Collision, 5)
	require.Len(t, cfg.Enemies, 2)
	assert.Equal(t, "dino", cfg.Enemies[0].Type)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": {Data: []byte("player:\n  speed: 4\nbullets:\n  maxBullets: 5\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 4.0, cfg.Player.Speed)
	assert.Equal(t, 5, cfg.Bullets.MaxBullets)
	assert.Equal(t, -10.0, cfg.Player.JumpVelocity)
	assert.Equal(t, 64, cfg.World.GroundLevel)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing file", fstest.MapFS{}},
		{"bad yaml", fstest.MapFS{"game.yaml": {Data: []byte("player: [")}}},
		{"invalid values", fstest.MapFS{"game.yaml": {Data: []byte("world:\n  tileSize: 0\n")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadGame()
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadStageMissing(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadStage("nowhere")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Session.Hearts = 0
	cfg.World.MaxBlocks = -1
	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session.hearts")
	assert.Contains(t, err.Error(), "world.maxBlocks")
}

func TestLoader_HasFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{"levels/a.tmx": {Data: []byte("x")}}, "mem")

	assert.True(t, loader.HasFile("levels/a.tmx"))
	assert.False(t, loader.HasFile("levels/b.tmx"))
}
