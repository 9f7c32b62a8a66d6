package entity

import "github.com/younwookim/ninjarun/internal/domain/fixed"

type stubVisual struct {
	x, y      fixed.Fixed
	visible   bool
	flipped   bool
	scale     float64
	anim      Animation
	halfWidth int
	destroyed bool
}

func newStubVisual(halfWidth int, scale float64) *stubVisual {
	return &stubVisual{visible: true, halfWidth: halfWidth, scale: scale}
}

func (s *stubVisual) SetPosition(x, y fixed.Fixed) { s.x, s.y = x, y }
func (s *stubVisual) SetVisible(visible bool)      { s.visible = visible }
func (s *stubVisual) SetHorizontalFlip(flip bool)  { s.flipped = flip }
func (s *stubVisual) SetScale(scale float64)       { s.scale = scale }
func (s *stubVisual) SetAnimation(anim Animation)  { s.anim = anim }
func (s *stubVisual) ShapeHalfWidth() int          { return s.halfWidth }
func (s *stubVisual) HorizontalScale() float64     { return s.scale }
func (s *stubVisual) Destroy()                     { s.destroyed = true }
