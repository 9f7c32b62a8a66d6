// Package level reads block layouts and spawn points from Tiled maps.
package level

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"

	"github.com/younwookim/ninjarun/internal/domain/entity"
)

const (
	// BlockLayer is the tile layer whose non-empty tiles become solid blocks.
	BlockLayer = "blocks"
	// SpawnGroup is the object group holding player and enemy spawns.
	SpawnGroup = "spawns"
)

// Spawn is a named point in world pixels. FacingRight is the initial facing
// of an enemy.
type Spawn struct {
	Name        string
	X, Y        int
	FacingRight bool
}

// Level is the collision and spawn data of one map.
type Level struct {
	TileSize    int
	OriginX     int
	OriginY     int
	Blocks      []entity.TileCoord
	PlayerSpawn Spawn
	Enemies     []Spawn
}

// LoadTMX parses the TMX file at path inside fsys. Tile (col,row) of the
// block layer maps to block (originX+col, originY+row), where the origin comes
// from the map properties originX and originY.
func LoadTMX(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			path, levelMap.TileWidth, levelMap.TileHeight)
	}

	lvl := &Level{TileSize: levelMap.TileWidth}
	if levelMap.Properties != nil {
		lvl.OriginX = levelMap.Properties.GetInt("originX")
		lvl.OriginY = levelMap.Properties.GetInt("originY")
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != BlockLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				lvl.Blocks = append(lvl.Blocks, entity.TileCoord{
					X: lvl.OriginX + x,
					Y: lvl.OriginY + y,
				})
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q layer", path, BlockLayer)
	}

	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			spawn := Spawn{
				Name:        o.Name,
				X:           int(o.X),
				Y:           int(o.Y),
				FacingRight: o.Properties.GetBool("facingRight"),
			}
			switch o.Name {
			case "player":
				lvl.PlayerSpawn = spawn
				hasPlayer = true
			default:
				if _, ok := entity.ParseEnemyType(o.Name); !ok {
					return nil, fmt.Errorf("load TMX %s: object %d: unknown spawn %q", path, o.ID, o.Name)
				}
				lvl.Enemies = append(lvl.Enemies, spawn)
			}
		}
	}
	if !hasPlayer {
		return nil, fmt.Errorf("load TMX %s: no player spawn", path)
	}

	sort.SliceStable(lvl.Enemies, func(i, j int) bool {
		return lvl.Enemies[i].X < lvl.Enemies[j].X
	})

	return lvl, nil
}

// BlockMap builds a block map holding every block of the level.
func (l *Level) BlockMap(capacity int) (*entity.BlockMap, error) {
	blocks := entity.NewBlockMap(l.TileSize, capacity)
	for _, c := range l.Blocks {
		if err := blocks.Insert(c.X, c.Y); err != nil {
			return nil, fmt.Errorf("block (%d,%d): %w", c.X, c.Y, err)
		}
	}
	return blocks, nil
}
