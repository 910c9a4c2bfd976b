// Package render defines the drawing surfaces the debug visualization hook
// writes to. Surface is a subset of *gg.Context so the gogpu
// rasterizer can be passed in directly.
package render

import (
	"github.com/gogpu/gg"
)

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	SetLineWidth(width float64)
	SetHexColor(hex string)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawCircle(x, y, r float64)
	DrawRectangle(x, y, w, h float64)

	Stroke() error
	Fill() error
}

var _ Surface = (*gg.Context)(nil)

// Background is the arena clear color.
const Background = "#242424"

// NewCanvas returns a raster surface of the given size cleared to Background.
func NewCanvas(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetHexColor(Background)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	_ = dc.Fill()
	return dc
}
