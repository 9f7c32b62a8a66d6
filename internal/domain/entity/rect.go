package entity

import "github.com/younwookim/ninjarun/internal/domain/fixed"

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y fixed.Fixed
	W, H fixed.Fixed
}

// RectFromCenter builds a rect of size w×h centred on (cx, cy).
func RectFromCenter(cx, cy, w, h fixed.Fixed) Rect {
	return Rect{X: cx - w.DivInt(2), Y: cy - h.DivInt(2), W: w, H: h}
}

func (r Rect) Left() fixed.Fixed   { return r.X }
func (r Rect) Right() fixed.Fixed  { return r.X + r.W }
func (r Rect) Top() fixed.Fixed    { return r.Y }
func (r Rect) Bottom() fixed.Fixed { return r.Y + r.H }

// CenterX returns the horizontal centre.
func (r Rect) CenterX() fixed.Fixed { return r.X + r.W.DivInt(2) }

// CenterY returns the vertical centre.
func (r Rect) CenterY() fixed.Fixed { return r.Y + r.H.DivInt(2) }

// Intersects reports a strict overlap. Rects that share only an edge do not
// intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Touches reports an overlap or shared edge.
func (r Rect) Touches(o Rect) bool {
	return r.Left() <= o.Right() && r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() && r.Bottom() >= o.Top()
}
