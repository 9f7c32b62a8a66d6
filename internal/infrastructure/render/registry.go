// Package render keeps the visual handles the simulation creates and draws
// them with ebiten.
package render

import (
	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
)

// Frames per animation cell.
const animFrameTicks = 16

// Handle is a drawable sprite. It implements entity.Visual.
type Handle struct {
	Kind      entity.Kind
	X, Y      fixed.Fixed
	Visible   bool
	Flipped   bool
	Scale     float64
	Anim      entity.Animation
	Frame     int
	Width     int
	Height    int
	destroyed bool
}

func (h *Handle) SetPosition(x, y fixed.Fixed) { h.X, h.Y = x, y }
func (h *Handle) SetVisible(visible bool)      { h.Visible = visible }
func (h *Handle) SetHorizontalFlip(flip bool)  { h.Flipped = flip }
func (h *Handle) SetScale(scale float64)       { h.Scale = scale }
func (h *Handle) ShapeHalfWidth() int          { return h.Width / 2 }
func (h *Handle) HorizontalScale() float64     { return h.Scale }
func (h *Handle) Destroy()                     { h.destroyed = true }
func (h *Handle) Destroyed() bool              { return h.destroyed }

// SetAnimation switches the animation and restarts it.
func (h *Handle) SetAnimation(anim entity.Animation) {
	if h.Anim == anim {
		return
	}
	h.Anim = anim
	h.Frame = 0
}

// Cell returns the current animation cell.
func (h *Handle) Cell() int {
	return h.Frame / animFrameTicks
}

// Registry creates handles and keeps them in creation order, which is also
// the draw order. It implements entity.VisualFactory.
type Registry struct {
	sprites map[string]config.SpriteConfig
	handles []*Handle
}

// NewRegistry creates a registry sizing sprites from the config map, keyed by
// entity.Kind names.
func NewRegistry(sprites map[string]config.SpriteConfig) *Registry {
	return &Registry{sprites: sprites}
}

// Create implements entity.VisualFactory.
func (r *Registry) Create(kind entity.Kind, x, y fixed.Fixed) entity.Visual {
	w, h := entity.DefaultTileSize, entity.DefaultTileSize
	if sc, ok := r.sprites[kind.String()]; ok {
		w, h = sc.Width, sc.Height
	}

	handle := &Handle{
		Kind:    kind,
		X:       x,
		Y:       y,
		Visible: true,
		Scale:   1,
		Width:   w,
		Height:  h,
	}
	r.handles = append(r.handles, handle)
	return handle
}

// Update advances animations and drops destroyed handles.
func (r *Registry) Update() {
	live := r.handles[:0]
	for _, h := range r.handles {
		if h.destroyed {
			continue
		}
		if h.Anim != entity.AnimNone {
			h.Frame++
		}
		live = append(live, h)
	}
	clear(r.handles[len(live):])
	r.handles = live
}

// Handles returns the live handles in draw order.
func (r *Registry) Handles() []*Handle {
	out := make([]*Handle, 0, len(r.handles))
	for _, h := range r.handles {
		if !h.destroyed {
			out = append(out, h)
		}
	}
	return out
}

// Count returns the number of live handles of kind.
func (r *Registry) Count(kind entity.Kind) int {
	n := 0
	for _, h := range r.handles {
		if h.Kind == kind && !h.destroyed {
			n++
		}
	}
	return n
}
