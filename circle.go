package scope

import "math"

// CircleRecorder is the clock-face radial recorder. Each sample is plotted
// at a distance proportional to its value along a hand that turns clockwise
// from twelve o'clock as the sample ages; the spoke grid rotates with the
// step counter.
//
// Besides the trace it reports two running means over the whole history:
// the centroid of the plotted positions (the "M" marker) and the mean of
// the sample vectors at their unrotated angles (the Mx/My/Md readout).
type CircleRecorder struct {
	radial
}

var _ Recorder = (*CircleRecorder)(nil)

// NewCircleRecorder creates a clock-face recorder over a square region.
// g.Height may be zero, in which case it is set to g.Width. g.Speed is the
// angular advance per sample in degrees.
func NewCircleRecorder(g Geometry, opts ...Option) (*CircleRecorder, error) {
	g, err := newRadialGeometry(g)
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	c := &CircleRecorder{}
	if err := c.init("circle", g, o.capacity, o); err != nil {
		return nil, err
	}
	return c, nil
}

// UnscaledPosition places value v at backward offset i (0 = newest):
// θ = -i·π·speed/180 + π/2.
func (c *CircleRecorder) UnscaledPosition(v float64, i int) Point {
	return angularPosition(v, -float64(i)*math.Pi*c.geom.Speed/180+math.Pi/2)
}

// MeanValue places value v at forward index i (0 = oldest) on the
// unrotated plane: θ = i·π·speed/180.
func (c *CircleRecorder) MeanValue(v float64, i int) Point {
	return angularPosition(v, float64(i)*math.Pi*c.geom.Speed/180)
}

// Means returns the arithmetic mean of the unscaled positions (mPos) and of
// the MeanValue vectors (mValue) over the whole history. ok is false for an
// empty history.
func (c *CircleRecorder) Means() (mPos, mValue Point, ok bool) {
	n := c.history.Len()
	if n == 0 {
		return Point{}, Point{}, false
	}
	for i, v := range c.history.Backward() {
		mPos = mPos.Add(c.UnscaledPosition(v, i))
	}
	for i, v := range c.history.All() {
		mValue = mValue.Add(c.MeanValue(v, i))
	}
	return mPos.Div(float64(n)), mValue.Div(float64(n)), true
}

// Render implements Recorder. It wraps the step counter to zero once the
// grid has turned a full revolution.
func (c *CircleRecorder) Render(s Surface) {
	g := c.geom
	if math.Abs(float64(c.step)*g.Speed) >= 360 {
		c.log.Debug("grid rotation wrapped", "step", c.step)
		c.step = 0
	}
	c.renderGrid(s, float64(c.step)*g.Speed,
		func(deg float64) float64 { return -deg*math.Pi/180 + math.Pi/2 },
		func(n int) (string, bool) {
			switch n {
			case 0:
				return "X", true
			case radialSpokes * 3 / 4:
				return "Y", true
			}
			return "", false
		})

	latest, ok := c.history.Last()
	if !ok {
		return
	}
	c.RenderPointer(s, c.ScaledValue(latest), g.Center().X, false)

	var prev Point
	havePrev := false
	for i, v := range c.history.Backward() {
		cur := c.ScalePosition(c.UnscaledPosition(v, i))
		if havePrev {
			s.DrawLine(c.style.Graph, prev.Screen(), cur.Screen())
		}
		if c.markerDue(c.step - i) {
			c.renderMarker(s, cur)
		}
		prev, havePrev = cur, true
	}

	mPos, mValue, _ := c.Means()
	c.renderM(s, mPos, mValue, c.style.Graph)
}
