package scope

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Surface is the drawing capability a recorder renders into.
//
// Implementations live in the surface sub-package: one over *gg.Context for
// raster frames and one over *recording.Recorder for command capture.
// Surfaces are NOT thread-safe. Recorders sharing a frame must render
// serially.
type Surface interface {
	// DrawLine strokes a single segment from a to b.
	DrawLine(pen Pen, a, b ScreenPoint)

	// DrawPolyline strokes the open polyline through pts.
	DrawPolyline(pen Pen, pts ...ScreenPoint)

	// DrawRectangle strokes the outline of r.
	DrawRectangle(pen Pen, r Rect)

	// FillRectangle fills r with c.
	FillRectangle(c gg.RGBA, r Rect)

	// DrawEllipse strokes the ellipse inscribed in r.
	DrawEllipse(pen Pen, r Rect)

	// FillEllipse fills the ellipse inscribed in r with c.
	FillEllipse(c gg.RGBA, r Rect)

	// DrawString draws a single line of text whose bounding box has its
	// top-left corner at at.
	DrawString(s string, face text.Face, c gg.RGBA, at ScreenPoint)

	// MeasureString returns the advance width and line height of s.
	MeasureString(s string, face text.Face) (w, h float64)

	// PushClip intersects the clip region with r until the matching PopClip.
	PushClip(r Rect)

	// PopClip restores the clip region saved by the last PushClip.
	PopClip()
}

// Pen describes a stroke: color, width and optional dash pattern.
type Pen struct {
	Color gg.RGBA
	Width float64
	Dash  []float64
}

// IsDashed reports whether the pen strokes a dash pattern.
func (p Pen) IsDashed() bool {
	return len(p.Dash) > 0
}

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from its origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the square of side 2*r centered on c.
func RectAround(c Point, r float64) Rect {
	return Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
