package system

import (
	"github.com/younwookim/ninjarun/internal/domain/fixed"
	"github.com/younwookim/ninjarun/internal/infrastructure/config"
)

// Camera is a dead-zone follow camera. X and Y are the world point shown at
// the centre of the screen.
type Camera struct {
	X, Y fixed.Fixed

	borderX fixed.Fixed
	borderY fixed.Fixed
	maxY    fixed.Fixed
}

// NewCamera creates a camera at the origin.
func NewCamera(cfg config.CameraConfig) *Camera {
	return &Camera{
		borderX: fixed.FromInt(cfg.BorderX),
		borderY: fixed.FromInt(cfg.BorderY),
		maxY:    fixed.FromInt(cfg.MaxY),
	}
}

// Follow snaps the camera so (x, y) stays within the border distance on each
// axis. The camera never moves below maxY.
func (c *Camera) Follow(x, y fixed.Fixed) {
	if (x - c.X).Abs() > c.borderX {
		if x > c.X {
			c.X = x - c.borderX
		} else {
			c.X = x + c.borderX
		}
	}

	if (y - c.Y).Abs() > c.borderY {
		if y < c.Y {
			c.Y = fixed.Min(c.maxY, y+c.borderY)
		} else {
			c.Y = fixed.Min(c.maxY, y-c.borderY)
		}
	}
}

// ToScreen converts a world point to screen pixels for a screen of size w×h.
func (c *Camera) ToScreen(x, y fixed.Fixed, w, h int) (float64, float64) {
	return (x - c.X).Float64() + float64(w)/2, (y - c.Y).Float64() + float64(h)/2
}
