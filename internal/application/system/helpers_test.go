package system

import (
	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
)

type stubVisual struct {
	x, y      fixed.Fixed
	visible   bool
	flipped   bool
	scale     float64
	anim      entity.Animation
	halfWidth int
	destroyed bool
}

func (v *stubVisual) SetPosition(x, y fixed.Fixed)    { v.x, v.y = x, y }
func (v *stubVisual) SetVisible(visible bool)         { v.visible = visible }
func (v *stubVisual) SetHorizontalFlip(flip bool)     { v.flipped = flip }
func (v *stubVisual) SetScale(scale float64)          { v.scale = scale }
func (v *stubVisual) SetAnimation(a entity.Animation) { v.anim = a }
func (v *stubVisual) ShapeHalfWidth() int             { return v.halfWidth }
func (v *stubVisual) HorizontalScale() float64        { return v.scale }
func (v *stubVisual) Destroy()                        { v.destroyed = true }

// stubFactory hands out stub visuals sized like the default sprites.
type stubFactory struct {
	created []*stubVisual
}

func (f *stubFactory) Create(kind entity.Kind, x, y fixed.Fixed) entity.Visual {
	half := 8
	if kind == entity.KindDino || kind == entity.KindTurtle {
		half = 16
	}
	v := &stubVisual{x: x, y: y, visible: true, scale: 1, halfWidth: half}
	f.created = append(f.created, v)
	return v
}

func (f *stubFactory) live() int {
	n := 0
	for _, v := range f.created {
		if !v.destroyed {
			n++
		}
	}
	return n
}

func fx(i int) fixed.Fixed { return fixed.FromInt(i) }

func newTestBody(x, y int) *entity.Body {
	return &entity.Body{X: fx(x), Y: fx(y), W: fx(16), H: fx(16)}
}

func newTestPlayer(x, y int) *entity.Player {
	v := &stubVisual{visible: true, scale: 1, halfWidth: 8}
	return entity.NewPlayer(fx(x), fx(y), fx(16), fx(16), v)
}

func blocksAt(coords ...entity.TileCoord) *entity.BlockMap {
	m := entity.NewBlockMap(16, 32)
	for _, c := range coords {
		if err := m.Insert(c.X, c.Y); err != nil {
			panic(err)
		}
	}
	return m
}
