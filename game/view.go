package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/track"
)

const viewMargin = 40.0 // pixels around the outer bound

// View maps track meters to screen pixels. World y already grows downward,
// so the mapping is a uniform scale plus a shift.
type View struct {
	scale   float64
	originX float64
	originY float64
}

// NewView fits the outer bound of t into a width by height screen.
func NewView(t *track.Track, width, height int) View {
	halfWidth := t.Right.X + t.OuterBound.Radius
	halfHeight := t.OuterBound.Radius

	scaleX := (float64(width) - 2*viewMargin) / (2 * halfWidth)
	scaleY := (float64(height) - 2*viewMargin) / (2 * halfHeight)
	return View{
		scale:   max(min(scaleX, scaleY), 1),
		originX: float64(width) / 2,
		originY: float64(height) / 2,
	}
}

func (v View) ToScreen(p geometry.Vector) (float32, float32) {
	return float32(v.originX + p.X*v.scale), float32(v.originY + p.Y*v.scale)
}

func (v View) ToWorld(x, y int) geometry.Vector {
	return geometry.Vector{
		X: (float64(x) - v.originX) / v.scale,
		Y: (float64(y) - v.originY) / v.scale,
	}
}

// Length converts meters to pixels.
func (v View) Length(meters float64) float32 {
	return float32(meters * v.scale)
}

func getCurrentMousePosition(v View) geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return v.ToWorld(mouseX, mouseY)
}
