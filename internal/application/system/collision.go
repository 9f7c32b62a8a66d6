package system

import (
	"github.com/younwookim/ninjarun/internal/domain/entity"
)

// ResolveBlocks pushes body out of the blocks in the 3x3 tile neighborhood
// around its centre. prev is the body's rect before this tick's move.
//
// Vertical contact uses Touches, so a body resting exactly flush on a block
// top lands. Horizontal contact needs a strict Intersects, so flush side
// contact is not a collision. Tiles are visited x-major and each one sees the
// corrections made by the ones before it.
//
// It reports whether the body ended up standing on a block.
func ResolveBlocks(body *entity.Body, prev entity.Rect, blocks *entity.BlockMap) bool {
	standing := false
	center := entity.TileOf(body.X, body.Y, blocks.TileSize())

	for _, coord := range center.Neighborhood() {
		block, ok := blocks.Lookup(coord)
		if !ok {
			continue
		}
		if resolveBlock(body, prev, block.Rect) {
			standing = true
		}
	}
	return standing
}

// resolveBlock resolves body against one block rect.
func resolveBlock(body *entity.Body, prev, block entity.Rect) bool {
	rect := body.Rect()
	touches := rect.Touches(block)
	intersects := rect.Intersects(block)
	halfW := body.W.DivInt(2)
	halfH := body.H.DivInt(2)
	standing := false

	if touches {
		fromAbove := prev.Bottom() <= block.Top()
		fromBelow := prev.Top() >= block.Bottom()

		if fromBelow {
			body.Y = block.Bottom() + halfH
			body.VY = 0
		} else if fromAbove {
			body.Y = block.Top() - halfH
			body.VY = 0
			standing = true
		}
	}

	if intersects {
		fromLeft := prev.Right() <= block.Left()
		fromRight := prev.Left() >= block.Right()

		if fromLeft {
			body.X = block.Left() - halfW
			body.VX = 0
		} else if fromRight {
			body.X = block.Right() + halfW
			body.VX = 0
		}
	}

	return standing
}
