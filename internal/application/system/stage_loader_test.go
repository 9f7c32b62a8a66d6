package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
	"github.com/younwookim/ninjarun/internal/infrastructure/level"
)

func TestLoadStage(t *testing.T) {
	t.Run("maps solid characters to blocks", func(t *testing.T) {
		cfg := &config.StageConfig{
			ID:          "test",
			TileSize:    16,
			Origin:      config.PositionConfig{X: -1, Y: 2},
			PlayerSpawn: config.PositionConfig{X: 32, Y: 64},
			Layers: config.LayersConfig{
				Collision: []string{
					"#.#",
					".#.",
				},
			},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Type: "block", Solid: true},
				".": {Type: "empty", Solid: false},
			},
		}

		lvl, err := LoadStage(cfg)

		require.NoError(t, err)
		assert.Equal(t, 16, lvl.TileSize)
		assert.Equal(t, level.Spawn{Name: "player", X: 32, Y: 64}, lvl.PlayerSpawn)
		assert.Equal(t, []entity.TileCoord{
			{X: -1, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 3},
		}, lvl.Blocks)
	})

	t.Run("unknown and non-solid characters are empty", func(t *testing.T) {
		cfg := &config.StageConfig{
			Layers: config.LayersConfig{Collision: []string{"?~#"}},
			TileMapping: map[string]config.TileMappingConfig{
				"#": {Type: "block", Solid: true},
				"~": {Type: "decor", Solid: false},
			},
		}

		lvl, err := LoadStage(cfg)

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultTileSize, lvl.TileSize, "default tile size")
		assert.Equal(t, []entity.TileCoord{{X: 2, Y: 0}}, lvl.Blocks)
	})

	t.Run("enemy spawns", func(t *testing.T) {
		cfg := &config.StageConfig{
			Enemies: []config.EnemySpawnConfig{
				{Type: "dino", X: -100, Y: 64},
				{Type: "turtle", X: 100, Y: 64, FacingRight: true},
			},
		}

		lvl, err := LoadStage(cfg)

		require.NoError(t, err)
		assert.Equal(t, []level.Spawn{
			{Name: "dino", X: -100, Y: 64},
			{Name: "turtle", X: 100, Y: 64, FacingRight: true},
		}, lvl.Enemies)
	})

	t.Run("rejects unknown enemy", func(t *testing.T) {
		cfg := &config.StageConfig{
			ID:      "bad",
			Enemies: []config.EnemySpawnConfig{{Type: "dragon"}},
		}

		_, err := LoadStage(cfg)
		assert.ErrorContains(t, err, "dragon")
	})
}

func TestLoadStage_DemoMatchesTMX(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	fromYAML, err := LoadStage(stageCfg)
	require.NoError(t, err)

	fromTMX, err := level.LoadTMX(loader.FS(), "levels/demo.tmx")
	require.NoError(t, err)

	assert.ElementsMatch(t, fromYAML.Blocks, fromTMX.Blocks)
	assert.Equal(t, fromYAML.PlayerSpawn, fromTMX.PlayerSpawn)
	assert.Equal(t, fromYAML.Enemies, fromTMX.Enemies)
}
