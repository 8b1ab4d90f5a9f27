package scope

import "math"

// PolarRecorder is the polar-trace radial recorder. Samples are walked
// oldest to newest, sample i plotted at angle i·speed degrees
// counter-clockwise from the X axis, so a periodic signal traces a
// Lissajous-style figure. A radius vector joins the origin to the newest
// point and the "M" marker shows the centroid of the trace.
type PolarRecorder struct {
	radial
}

var _ Recorder = (*PolarRecorder)(nil)

// NewPolarRecorder creates a polar-trace recorder over a square region.
// g.Height may be zero, in which case it is set to g.Width. g.Speed is the
// angular advance per sample in degrees.
func NewPolarRecorder(g Geometry, opts ...Option) (*PolarRecorder, error) {
	g, err := newRadialGeometry(g)
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	p := &PolarRecorder{}
	if err := p.init("polar", g, o.capacity, o); err != nil {
		return nil, err
	}
	return p, nil
}

// UnscaledPosition places value v at forward index i (0 = oldest):
// θ = i·π·speed/180.
func (p *PolarRecorder) UnscaledPosition(v float64, i int) Point {
	return angularPosition(v, float64(i)*math.Pi*p.geom.Speed/180)
}

// Mean returns the arithmetic mean of the unscaled positions over the whole
// history. ok is false for an empty history.
func (p *PolarRecorder) Mean() (mPos Point, ok bool) {
	n := p.history.Len()
	if n == 0 {
		return Point{}, false
	}
	for i, v := range p.history.All() {
		mPos = mPos.Add(p.UnscaledPosition(v, i))
	}
	return mPos.Div(float64(n)), true
}

// Render implements Recorder.
func (p *PolarRecorder) Render(s Surface) {
	p.renderGrid(s, 0,
		func(deg float64) float64 { return deg * math.Pi / 180 },
		func(n int) (string, bool) {
			switch n {
			case 0:
				return "X", true
			case radialSpokes / 4:
				return "Y", true
			case radialSpokes * 2 / 4, radialSpokes * 3 / 4:
				return "", true
			}
			return "", false
		})

	if p.history.Len() == 0 {
		return
	}

	origin := p.ScalePosition(Point{})
	var prev Point
	havePrev := false
	for i, v := range p.history.All() {
		cur := p.ScalePosition(p.UnscaledPosition(v, i))
		if havePrev {
			s.DrawLine(p.style.Graph, prev.Screen(), cur.Screen())
		}
		if p.markerDue(i) {
			p.renderMarker(s, cur)
		}
		prev, havePrev = cur, true
	}
	s.DrawString("O", p.fonts.Label, p.style.Text, origin.Screen())
	s.DrawLine(p.style.Pointer, origin.Screen(), prev.Screen())

	mPos, _ := p.Mean()
	p.renderM(s, mPos, mPos, p.style.Pointer)
}
