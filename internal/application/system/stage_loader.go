package system

import (
	"fmt"

	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
	"github.com/younwookim/ninjarun/internal/infrastructure/level"
)

// LoadStage converts a StageConfig into a Level. Character (col,row) of the
// collision layer is tile (origin.x+col, origin.y+row); characters mapped to
// a solid tile become blocks, anything else is empty.
func LoadStage(cfg *config.StageConfig) (*level.Level, error) {
	lvl := &level.Level{
		TileSize: cfg.TileSize,
		OriginX:  cfg.Origin.X,
		OriginY:  cfg.Origin.Y,
		PlayerSpawn: level.Spawn{
			Name: "player",
			X:    cfg.PlayerSpawn.X,
			Y:    cfg.PlayerSpawn.Y,
		},
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = entity.DefaultTileSize
	}

	for y, row := range cfg.Layers.Collision {
		for x, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok || !mapping.Solid {
				continue
			}
			lvl.Blocks = append(lvl.Blocks, entity.TileCoord{
				X: cfg.Origin.X + x,
				Y: cfg.Origin.Y + y,
			})
		}
	}

	for i, e := range cfg.Enemies {
		if _, ok := entity.ParseEnemyType(e.Type); !ok {
			return nil, fmt.Errorf("stage %s: enemy %d: unknown type %q", cfg.ID, i, e.Type)
		}
		lvl.Enemies = append(lvl.Enemies, level.Spawn{
			Name:        e.Type,
			X:           e.X,
			Y:           e.Y,
			FacingRight: e.FacingRight,
		})
	}

	return lvl, nil
}
