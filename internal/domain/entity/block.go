package entity

import "github.com/younwookim/ninjarun/internal/domain/fixed"

// DefaultTileSize is the side length of a tile in pixels.
const DefaultTileSize = 16

// TileCoord is an integer tile index.
type TileCoord struct {
	X, Y int
}

// TileOf returns the tile index of the world point (x, y) by floor division.
// A block is centred on its index times the tile size, so for actors no
// larger than a tile every block they can touch lies in the 3x3 neighborhood
// of this index.
func TileOf(x, y fixed.Fixed, tileSize int) TileCoord {
	return TileCoord{
		X: fixed.FloorDiv(x.Floor(), tileSize),
		Y: fixed.FloorDiv(y.Floor(), tileSize),
	}
}

// Neighborhood returns the 3x3 tiles centred on c, x ascending then y
// ascending. Collision resolution depends on this order.
func (c TileCoord) Neighborhood() [9]TileCoord {
	var tiles [9]TileCoord
	i := 0
	for x := c.X - 1; x <= c.X+1; x++ {
		for y := c.Y - 1; y <= c.Y+1; y++ {
			tiles[i] = TileCoord{X: x, Y: y}
			i++
		}
	}
	return tiles
}

// Block is a static solid tile.
type Block struct {
	Coord TileCoord
	Rect  Rect
}

// NewBlock creates the block for tile (x, y), a tile-sized square centred
// on (x*tileSize, y*tileSize).
func NewBlock(x, y, tileSize int) Block {
	size := fixed.FromInt(tileSize)
	return Block{
		Coord: TileCoord{X: x, Y: y},
		Rect:  RectFromCenter(fixed.FromInt(x*tileSize), fixed.FromInt(y*tileSize), size, size),
	}
}
