package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/ninjarun/internal/domain/entity"
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
)

var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorGround  = color.RGBA{60, 48, 40, 255}
	colorDefault = color.RGBA{255, 255, 255, 255}
	colorOverlay = color.RGBA{0, 0, 0, 160}
)

// Renderer draws registry handles as filled rects.
type Renderer struct {
	registry *Registry
	colors   map[entity.Kind]color.RGBA
	screenW  int
	screenH  int
}

// NewRenderer parses the sprite colours and creates a renderer for a screen
// of screenW×screenH pixels.
func NewRenderer(registry *Registry, sprites map[string]config.SpriteConfig, screenW, screenH int) (*Renderer, error) {
	colors := make(map[entity.Kind]color.RGBA)
	kinds := []entity.Kind{
		entity.KindPlayer, entity.KindBlock, entity.KindDino,
		entity.KindTurtle, entity.KindBullet, entity.KindHeart,
	}
	for _, k := range kinds {
		sc, ok := sprites[k.String()]
		if !ok {
			colors[k] = colorDefault
			continue
		}
		c, err := ParseColor(sc.Color)
		if err != nil {
			return nil, fmt.Errorf("sprite %s: %w", k, err)
		}
		colors[k] = c
	}

	return &Renderer{
		registry: registry,
		colors:   colors,
		screenW:  screenW,
		screenH:  screenH,
	}, nil
}

// ParseColor parses a #rrggbb colour.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ScreenRect returns where h is drawn on screen. World handles are offset by
// the camera (camX, camY); HUD handles are relative to the screen centre.
func (r *Renderer) ScreenRect(h *Handle, camX, camY fixed.Fixed) (x, y, w, hgt float64) {
	w = float64(h.Width) * h.Scale
	hgt = float64(h.Height) * h.Scale

	cx, cy := h.X, h.Y
	if h.Kind.WorldSpace() {
		cx -= camX
		cy -= camY
	}
	x = cx.Float64() + float64(r.screenW)/2 - w/2
	y = cy.Float64() + float64(r.screenH)/2 - hgt/2
	return x, y, w, hgt
}

// Draw renders every visible handle. groundY is the world y of the ground
// plane's top edge.
func (r *Renderer) Draw(screen *ebiten.Image, camX, camY, groundY fixed.Fixed) {
	screen.Fill(colorBG)

	gy := (groundY - camY).Float64() + float64(r.screenH)/2
	if gy < float64(r.screenH) {
		ebitenutil.DrawRect(screen, 0, gy, float64(r.screenW), float64(r.screenH)-gy, colorGround)
	}

	for _, h := range r.registry.Handles() {
		if !h.Visible {
			continue
		}
		x, y, w, hgt := r.ScreenRect(h, camX, camY)
		if h.Anim != entity.AnimNone && h.Cell()%2 == 1 {
			y--
		}
		c := r.colors[h.Kind]
		ebitenutil.DrawRect(screen, x, y, w, hgt, c)

		// facing marker
		mx := x + w - 2
		facingLeft := h.Flipped
		if h.Kind == entity.KindPlayer {
			facingLeft = h.Anim == entity.AnimRunLeft
		}
		if facingLeft {
			mx = x
		}
		if h.Kind != entity.KindBlock && h.Kind != entity.KindHeart {
			ebitenutil.DrawRect(screen, mx, y+2, 2, 2, colorBG)
		}
	}
}

// DrawGameOver dims the screen and shows the restart prompt.
func (r *Renderer) DrawGameOver(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(r.screenW), float64(r.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, "GAME OVER", r.screenW/2-27, r.screenH/2-18)
	ebitenutil.DebugPrintAt(screen, "PRESS START", r.screenW/2-33, r.screenH/2+2)
}

// DrawPaused dims the screen with a pause label.
func (r *Renderer) DrawPaused(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(r.screenW), float64(r.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED", r.screenW/2-18, r.screenH/2-8)
}

// DrawStatus prints a one-line debug status in the bottom-left corner.
func (r *Renderer) DrawStatus(screen *ebiten.Image, status string) {
	ebitenutil.DebugPrintAt(screen, status, 2, r.screenH-16)
}
