package scope

import "math"

// Chart grid layout.
const (
	chartCellAggregate = 5  // every 5th ruling is heavier and labelled
	chartVCells        = 20 // horizontal divisions across the amplitude range
)

// ChartRecorder renders the history as a left-scrolling strip chart with a
// time-ruled grid and a live value pointer at the right edge.
//
// Its history holds exactly as many samples as fit the visible width at the
// configured scroll speed.
type ChartRecorder struct {
	base
	frameRate float64
}

var _ Recorder = (*ChartRecorder)(nil)

// NewChartRecorder creates a strip chart. g.Speed is the horizontal scroll
// in pixels per sample and must be positive.
func NewChartRecorder(g Geometry, opts ...Option) (*ChartRecorder, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if g.Speed <= 0 {
		return nil, &GeometryError{Field: "speed", Value: g.Speed, Reason: "chart scroll speed must be positive"}
	}
	o := applyOptions(opts)
	c := &ChartRecorder{frameRate: o.frameRate}
	if err := c.init("chart", g, g.WindowCapacity(), o); err != nil {
		return nil, err
	}
	return c, nil
}

// Render implements Recorder.
func (c *ChartRecorder) Render(s Surface) {
	g := c.geom
	s.PushClip(g.Rect())
	defer s.PopClip()

	c.renderGrid(s)

	latest, ok := c.history.Last()
	if !ok {
		return
	}
	right := float64(g.X + g.Width - PointerWidth)
	c.RenderPointer(s, c.ScaledValue(latest), right, false)

	var prev Point
	havePrev := false
	for n, v := range c.history.Backward() {
		offset := float64(n) * g.Speed
		cur := Pt(right-offset, c.ScaledValue(v))
		if havePrev {
			s.DrawLine(c.style.Graph, prev.Screen(), cur.Screen())
		}
		if c.markerDue(int(float64(c.step) - offset)) {
			c.renderMarker(s, cur)
		}
		prev, havePrev = cur, true
	}
}

// TimeSpacing returns the distance in pixels between vertical rulings:
// frameRate / speed.
func (c *ChartRecorder) TimeSpacing() float64 {
	return c.frameRate / c.geom.Speed
}

func (c *ChartRecorder) renderGrid(s Surface) {
	g := c.geom
	r := g.Rect()
	s.FillRectangle(c.style.Background, r)
	s.DrawRectangle(c.style.Border, r)

	halfPointer := PointerHeight / 2.0
	spacing := c.TimeSpacing()
	window := chartCellAggregate * spacing
	shift := math.Mod(float64(c.step), window)
	chartWidth := float64(g.Width - PointerWidth)
	left, top := r.X, r.Y

	n := 0
	for x := 0.0; x < r.W+window; x, n = x+spacing, n+1 {
		startX := left + x - shift
		if startX <= left || startX >= left+r.W {
			continue
		}
		major := n%chartCellAggregate == 0
		pen := c.style.LightGrid
		if major {
			pen = c.style.Grid
		}
		bottom := Pt(startX, top+r.H-halfPointer)
		s.DrawLine(pen, Pt(startX, top+halfPointer).Screen(), bottom.Screen())
		if !major {
			continue
		}

		t := (x - shift + float64(c.step) - chartWidth) / spacing
		label := c.printer.Sprintf("%d", int(t))
		w, h := s.MeasureString(label, c.fonts.Time)
		patch := NewRect(startX-w, top+r.H/2+2, w, h)
		s.FillRectangle(c.style.Background, patch)
		s.DrawString(label, c.fonts.Time, c.style.Grid.Color, Pt(patch.X, patch.Y).Screen())
	}

	vertDelta := (r.H - PointerHeight) / chartVCells
	for n := 0; n <= chartVCells; n++ {
		y := top + halfPointer + float64(n)*vertDelta
		pen := c.style.LightGrid
		switch {
		case n == chartVCells/2:
			pen = c.style.ThickGrid
		case n%chartCellAggregate == 0:
			pen = c.style.Grid
		}
		s.DrawLine(pen, Pt(left, y).Screen(), Pt(left+r.W, y).Screen())
	}
}
