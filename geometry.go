package scope

import "math"

// Fixed glyph and marker constants shared by all recorders.
const (
	// PointerWidth is the width of the value pointer glyph in pixels.
	PointerWidth = 20

	// PointerHeight is the height of the value pointer glyph in pixels.
	PointerHeight = 8

	// DefaultMarkerInterval is the number of steps between trace markers.
	DefaultMarkerInterval = 5

	// DefaultRadialCapacity bounds the history of radial recorders.
	DefaultRadialCapacity = 10000

	// DefaultFrameRate is the frame rate the chart time ruling assumes.
	DefaultFrameRate = 30
)

// Geometry is the immutable placement and scaling of a recorder.
//
// Speed is the horizontal scroll in pixels per sample for ChartRecorder and
// the angular advance in degrees per sample for the radial recorders (its
// sign selects the rotation direction).
type Geometry struct {
	Amplitude float64
	Speed     float64
	X, Y      int
	Width     int
	Height    int
}

// K returns the factor mapping signal units to pixels:
// (Height - PointerHeight) / (2 * Amplitude).
func (g Geometry) K() float64 {
	return float64(g.Height-PointerHeight) / (2 * g.Amplitude)
}

// Rect returns the drawing region.
func (g Geometry) Rect() Rect {
	return Rect{X: float64(g.X), Y: float64(g.Y), W: float64(g.Width), H: float64(g.Height)}
}

// Center returns the center of the drawing region.
func (g Geometry) Center() Point {
	return Point{X: float64(g.X) + float64(g.Width)/2, Y: float64(g.Y) + float64(g.Height)/2}
}

// Clamp limits v to [-Amplitude, Amplitude]. NaN clamps to zero.
func (g Geometry) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-g.Amplitude, math.Min(g.Amplitude, v))
}

// WindowCapacity is the number of samples that fill the visible width of a
// chart: floor((Width - PointerWidth) / Speed), at least 1.
func (g Geometry) WindowCapacity() int {
	n := int(math.Floor(float64(g.Width-PointerWidth) / g.Speed))
	if n < 1 {
		return 1
	}
	return n
}

// validate checks the fields shared by every recorder.
func (g Geometry) validate() error {
	switch {
	case math.IsNaN(g.Amplitude) || math.IsInf(g.Amplitude, 0) || g.Amplitude <= 0:
		return &GeometryError{Field: "amplitude", Value: g.Amplitude, Reason: "must be positive and finite"}
	case math.IsNaN(g.Speed) || math.IsInf(g.Speed, 0):
		return &GeometryError{Field: "speed", Value: g.Speed, Reason: "must be finite"}
	case g.Width <= PointerWidth:
		return &GeometryError{Field: "width", Value: float64(g.Width), Reason: "must exceed the pointer width"}
	case g.Height <= PointerHeight:
		return &GeometryError{Field: "height", Value: float64(g.Height), Reason: "must exceed the pointer height"}
	}
	return nil
}
