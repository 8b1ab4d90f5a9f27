package scope

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate or vector in double precision.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsEmpty reports whether both components are exactly zero.
//
// A legitimate origin is indistinguishable from an unset point, so callers
// that need "no point yet" must track it separately.
func (p Point) IsEmpty() bool {
	return p.X == 0 && p.Y == 0
}

// Eq reports whether p and q have identical components.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Screen converts p to reduced precision screen space.
func (p Point) Screen() ScreenPoint {
	return ScreenPoint{X: float32(p.X), Y: float32(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("{X=%g, Y=%g}", p.X, p.Y)
}

// ScreenPoint is a single precision point handed to drawing calls.
type ScreenPoint struct {
	X, Y float32
}
