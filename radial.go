package scope

import "math"

// Radial grid layout.
const (
	radialRingAggregate = 5  // every 5th ring is heavier
	radialRings         = 10 // concentric rings across the radius
	radialSpokes        = 12
	radialSpokeStep     = 360 / radialSpokes
	radialSpokeInner    = 2 // spokes start this far from the center
)

// spokeStyle decides the pen and optional label of spoke n.
type spokeStyle func(n int) (label string, thick bool)

// radial holds what the clock-face and polar recorders share: a square
// region, a count-bounded history and the radial transform.
type radial struct {
	base
}

func newRadialGeometry(g Geometry) (Geometry, error) {
	if g.Height == 0 {
		g.Height = g.Width
	}
	if err := g.validate(); err != nil {
		return g, err
	}
	if g.Height != g.Width {
		return g, &GeometryError{Field: "height", Value: float64(g.Height), Reason: "radial recorders need a square region"}
	}
	return g, nil
}

// angularPosition maps value v at angle rads to unscaled plane coordinates.
func angularPosition(v, rads float64) Point {
	return Point{X: math.Cos(rads) * v, Y: math.Sin(rads) * v}
}

// ScalePosition maps an unscaled position to screen space around the region
// center. The y-axis is inverted.
func (r *radial) ScalePosition(p Point) Point {
	c := r.geom.Center()
	return Point{X: c.X + p.X*r.k, Y: c.Y - p.Y*r.k}
}

// renderGrid draws the white disc, concentric rings and twelve spokes.
// Spoke n sits at angle(startDeg + n*30) radians.
func (r *radial) renderGrid(s Surface, startDeg float64, angle func(deg float64) float64, style spokeStyle) {
	g := r.geom
	rect := g.Rect()
	center := g.Center()
	radius := float64(g.Width) / 2

	s.FillEllipse(r.style.Background, rect)

	ringSpace := float64(g.Height-PointerHeight) / radialRings / 2
	outer := float64(g.Height-PointerHeight) / 2
	for n := 0; n < radialRings; n++ {
		rr := outer - float64(n)*ringSpace
		pen := r.style.LightGrid
		if n%radialRingAggregate == 0 {
			pen = r.style.Grid
		}
		s.DrawEllipse(pen, RectAround(center, rr))
	}

	for n := 0; n < radialSpokes; n++ {
		rads := angle(startDeg + float64(n*radialSpokeStep))
		dir := Pt(math.Cos(rads), -math.Sin(rads))
		inner := center.Add(dir.Mul(radialSpokeInner))
		tip := center.Add(dir.Mul(radius))

		label, thick := style(n)
		pen := r.style.LightGrid
		if thick {
			pen = r.style.ThickGrid
		}
		if label != "" {
			s.DrawString(label, r.fonts.Label, r.style.Text, tip.Screen())
		}
		s.DrawLine(pen, inner.Screen(), tip.Screen())
	}

	s.DrawEllipse(r.style.Border, rect)
}

// renderM draws the centroid marker "M" at the scaled mean position, a
// dashed guide from the region center, and the Mx/My/Md readout panel
// anchored at the region's bottom-right corner.
func (r *radial) renderM(s Surface, mPos, readout Point, ringPen Pen) {
	g := r.geom
	at := r.ScalePosition(mPos)
	ring := RectAround(at, 3)

	s.DrawString("M", r.fonts.Label, r.style.Text, Pt(ring.X, ring.Y).Screen())
	s.DrawLine(r.style.DashedLine, g.Center().Screen(), at.Screen())
	s.DrawEllipse(ringPen, ring)

	r.renderTextBlock(s, r.fonts.Label, r.Readout(readout),
		float64(g.X+g.Width), float64(g.Y+g.Height))
}

// Readout formats the Mx, My and Md lines for vector m.
func (r *radial) Readout(m Point) []string {
	return []string{
		r.printer.Sprintf("Mx = %.3f", m.X),
		r.printer.Sprintf("My = %.3f", m.Y),
		r.printer.Sprintf("Md = %.3f", m.Length()),
	}
}
