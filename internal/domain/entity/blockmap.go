package entity

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// DefaultMaxBlocks is the block capacity of a level.
const DefaultMaxBlocks = 32

// ErrCapacityExceeded is returned when a fixed-capacity container is full.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// BlockMap is a sparse, capacity-bounded map from tile coordinate to block.
// It is filled once at level setup and read-only during play.
type BlockMap struct {
	tileSize int
	capacity int
	blocks   map[TileCoord]Block
}

// NewBlockMap creates an empty map.
func NewBlockMap(tileSize, capacity int) *BlockMap {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	if capacity <= 0 {
		capacity = DefaultMaxBlocks
	}
	return &BlockMap{
		tileSize: tileSize,
		capacity: capacity,
		blocks:   make(map[TileCoord]Block, capacity),
	}
}

// Insert creates a block at (x, y), replacing any block already there.
func (m *BlockMap) Insert(x, y int) error {
	coord := TileCoord{X: x, Y: y}
	if _, ok := m.blocks[coord]; !ok && len(m.blocks) >= m.capacity {
		return fmt.Errorf("insert block (%d,%d): %w (max %d)", x, y, ErrCapacityExceeded, m.capacity)
	}
	m.blocks[coord] = NewBlock(x, y, m.tileSize)
	return nil
}

// Contains reports whether a block exists at coord.
func (m *BlockMap) Contains(coord TileCoord) bool {
	_, ok := m.blocks[coord]
	return ok
}

// At returns the block at coord. Callers must check Contains first; a missing
// block is a programming error and panics.
func (m *BlockMap) At(coord TileCoord) Block {
	b, ok := m.blocks[coord]
	if !ok {
		panic(fmt.Sprintf("entity: no block at (%d,%d)", coord.X, coord.Y))
	}
	return b
}

// Lookup returns the block at coord and whether it exists.
func (m *BlockMap) Lookup(coord TileCoord) (Block, bool) {
	b, ok := m.blocks[coord]
	return b, ok
}

// Erase removes the block at coord, if any.
func (m *BlockMap) Erase(coord TileCoord) {
	delete(m.blocks, coord)
}

// All returns every block ordered by x then y.
func (m *BlockMap) All() []Block {
	blocks := make([]Block, 0, len(m.blocks))
	for _, b := range m.blocks {
		blocks = append(blocks, b)
	}
	slices.SortFunc(blocks, func(a, b Block) int {
		return cmp.Or(cmp.Compare(a.Coord.X, b.Coord.X), cmp.Compare(a.Coord.Y, b.Coord.Y))
	})
	return blocks
}

// Len returns the number of blocks.
func (m *BlockMap) Len() int { return len(m.blocks) }

// Cap returns the maximum number of blocks.
func (m *BlockMap) Cap() int { return m.capacity }

// TileSize returns the tile side length in pixels.
func (m *BlockMap) TileSize() int { return m.tileSize }
