package scope

import (
	"math"
	"slices"
	"testing"
)

func newTestCircle(t *testing.T, g Geometry, opts ...Option) *CircleRecorder {
	t.Helper()
	c, err := NewCircleRecorder(g, append([]Option{WithFonts(sharedFonts(t))}, opts...)...)
	if err != nil {
		t.Fatalf("NewCircleRecorder: %v", err)
	}
	return c
}

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestCircleCountBound(t *testing.T) {
	c := newTestCircle(t, Geometry{Amplitude: 1e6, Speed: 1, Width: 100})
	for v := 0; v < DefaultRadialCapacity+50; v++ {
		c.RegisterValue(float64(v))
	}
	if c.Len() != DefaultRadialCapacity {
		t.Fatalf("Len() = %d, want %d", c.Len(), DefaultRadialCapacity)
	}
	got := c.Values()
	if got[0] != 50 || got[len(got)-1] != DefaultRadialCapacity+49 {
		t.Errorf("retained [%v .. %v], want [50 .. %d]", got[0], got[len(got)-1], DefaultRadialCapacity+49)
	}
}

func TestCircleCapacityOption(t *testing.T) {
	c := newTestCircle(t, Geometry{Amplitude: 10, Speed: 1, Width: 100}, WithCapacity(3))
	for _, v := range []float64{1, 2, 3, 4, 5} {
		c.RegisterValue(v)
	}
	if got := c.Values(); !slices.Equal(got, []float64{3, 4, 5}) {
		t.Errorf("Values() = %v, want [3 4 5]", got)
	}
}

func TestCircleUnscaledPosition(t *testing.T) {
	c := newTestCircle(t, Geometry{Amplitude: 10, Speed: 90, Width: 100})
	tests := []struct {
		i    int
		want Point
	}{
		{0, Pt(0, 3)},  // newest points straight up
		{1, Pt(3, 0)},  // one step older: clockwise to three o'clock
		{2, Pt(0, -3)}, // six o'clock
		{3, Pt(-3, 0)},
	}
	for _, tt := range tests {
		if got := c.UnscaledPosition(3, tt.i); !pointsClose(got, tt.want) {
			t.Errorf("UnscaledPosition(3, %d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestCircleScalePosition(t *testing.T) {
	c := newTestCircle(t, Geometry{Amplitude: 10, Speed: 1, X: 10, Y: 20, Width: 208})
	// K = (208 - 8) / 20 = 10; center (114, 124).
	if got := c.ScalePosition(Pt(0, 0)); got != Pt(114, 124) {
		t.Errorf("ScalePosition(origin) = %v", got)
	}
	if got := c.ScalePosition(Pt(1, 2)); got != Pt(124, 104) {
		t.Errorf("ScalePosition(1,2) = %v, want (124,104) with y inverted", got)
	}
}

func TestCircleMeans(t *testing.T) {
	tests := []struct {
		name       string
		speed      float64
		values     []float64
		pos, value Point
	}{
		{"single sample", 90, []float64{2}, Pt(0, 2), Pt(2, 0)},
		{"full revolution cancels", 90, []float64{2, 2, 2, 2}, Pt(0, 0), Pt(0, 0)},
		{"quarter turn", 90, []float64{2, 2}, Pt(1, 1), Pt(1, 1)},
		{"no rotation", 0, []float64{1, 2, 3}, Pt(0, 2), Pt(2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCircle(t, Geometry{Amplitude: 10, Speed: tt.speed, Width: 100})
			for _, v := range tt.values {
				c.RegisterValue(v)
			}
			mPos, mValue, ok := c.Means()
			if !ok {
				t.Fatal("Means() reported empty history")
			}
			if !pointsClose(mPos, tt.pos) {
				t.Errorf("mPos = %v, want %v", mPos, tt.pos)
			}
			if !pointsClose(mValue, tt.value) {
				t.Errorf("mValue = %v, want %v", mValue, tt.value)
			}
		})
	}
}

func TestCircleMeansEmpty(t *testing.T) {
	c := newTestCircle(t, Geometry{Amplitude: 10, Speed: 1, Width: 100})
	if _, _, ok := c.Means(); ok {
		t.Error("Means() on empty history reported ok")
	}
}

func TestCircleRenderEmptyDrawsGridOnly(t *testing.T) {
	c := newTestCircle(t, Geometry{Amplitude: 10, Speed: 1, X: 485, Y: 5, Width: 450})
	var s fakeSurface
	c.Render(&s)

	if len(s.polylines) != 0 || len(s.fillsWith(c.style.GraphFill)) != 0 {
		t.Errorf("pointer or markers drawn for empty history")
	}
	if bg := s.fillsWith(c.style.Background); len(bg) != 1 || bg[0].r != c.Geometry().Rect() {
		t.Errorf("background disc = %v, want one fill over the region", bg)
	}
	if len(s.textsContaining("M")) != 0 {
		t.Error("centroid drawn for empty history")
	}
	if len(s.ellipses) != radialRings+1 {
		t.Errorf("ellipses = %d, want %d rings plus outline", len(s.ellipses), radialRings+1)
	}
	var labels []string
	for _, tc := range s.texts {
		labels = append(labels, tc.s)
	}
	if !slices.Equal(labels, []string{"X", "Y"}) {
		t.Errorf("labels = %v, want [X Y]", labels)
	}
}

func TestCircleGridSpokes(t *testing.T) {
	g := Geometry{Amplitude: 10, Speed: 30, Width: 200}
	c := newTestCircle(t, g)
	c.Clear() // step 0: unrotated
	var s fakeSurface
	c.Render(&s)

	spokes := s.lines
	if len(spokes) != radialSpokes {
		t.Fatalf("spokes = %d, want %d", len(spokes), radialSpokes)
	}
	center := c.Geometry().Center()
	x := s.textsContaining("X")[0].at
	if math.Abs(float64(x.X)-center.X) > 1e-3 || math.Abs(float64(x.Y)) > 1e-3 {
		t.Errorf("X label at %v, want top of the dial", x)
	}
	y := s.textsContaining("Y")[0].at
	if math.Abs(float64(y.X)) > 1e-3 || math.Abs(float64(y.Y)-center.Y) > 1e-3 {
		t.Errorf("Y label at %v, want left of the dial", y)
	}
	thick := 0
	for _, l := range spokes {
		if l.pen.Width == c.style.ThickGrid.Width {
			thick++
		}
	}
	if thick != 2 {
		t.Errorf("thick spokes = %d, want 2", thick)
	}
}

func TestCircleStepWraparound(t *testing.T) {
	c := newTestCircle(t, Geometry{Amplitude: 10, Speed: 30, Width: 200})
	for i := 0; i < 10; i++ {
		c.NextStep()
	}
	var s fakeSurface
	c.Render(&s)
	if c.Step() != 11 {
		t.Fatalf("Step() = %d after 330 degrees, want 11", c.Step())
	}

	c.NextStep()
	c.Render(&s)
	if c.Step() != 0 {
		t.Errorf("Step() = %d after a full revolution, want 0", c.Step())
	}
}

func TestCircleRenderTrace(t *testing.T) {
	g := Geometry{Amplitude: 10, Speed: 90, X: 0, Y: 0, Width: 208}
	c := newTestCircle(t, g)
	for _, v := range []float64{4, 4, 4} {
		c.RegisterValue(v)
	}
	before := c.Values()

	var s fakeSurface
	c.Render(&s)
	if !slices.Equal(before, c.Values()) {
		t.Fatal("Render mutated the history")
	}

	trace := s.linesWith(c.style.Graph)
	if len(trace) != 2 {
		t.Fatalf("trace segments = %d, want 2", len(trace))
	}
	newest := c.ScalePosition(c.UnscaledPosition(4, 0)).Screen()
	if trace[0].a != newest {
		t.Errorf("trace starts at %v, want newest sample %v", trace[0].a, newest)
	}

	if len(s.polylines) != 1 {
		t.Fatalf("pointer glyphs = %d, want 1", len(s.polylines))
	}
	tip := s.polylines[0][0]
	if tip.X != float32(c.Geometry().Center().X) || tip.Y != float32(c.ScaledValue(4)) {
		t.Errorf("pointer tip %v, want centered at the latest value", tip)
	}

	// step 1: markers at backward offsets where (1 - i) % 5 == 0.
	if n := len(s.fillsWith(c.style.GraphFill)); n != 1 {
		t.Errorf("markers = %d, want 1", n)
	}

	centroid := 0
	for _, tc := range s.texts {
		if tc.s == "M" {
			centroid++
		}
	}
	if centroid != 1 {
		t.Errorf("centroid labels = %d, want 1", centroid)
	}
	if len(s.linesWith(c.style.DashedLine)) != 1 {
		t.Error("centroid guide missing")
	}
}

func TestCircleReadout(t *testing.T) {
	c := newTestCircle(t, Geometry{Amplitude: 10, Speed: 90, X: 0, Y: 0, Width: 208})
	g := c.Geometry()
	c.RegisterValue(2)

	var s fakeSurface
	c.Render(&s)
	for _, want := range []string{"Mx = 2.000", "My = 0.000", "Md = 2.000"} {
		got := s.textsContaining(want)
		if len(got) != 1 {
			t.Errorf("readout %q missing from %v", want, s.texts)
			continue
		}
		// Panel is right-aligned to the region and starts below it.
		if got[0].at.X+float32(8*len(want)) != float32(g.X+g.Width) {
			t.Errorf("%q not right-aligned: left edge %v", want, got[0].at.X)
		}
		if got[0].at.Y < float32(g.Y+g.Height) {
			t.Errorf("%q drawn inside the dial at y=%v", want, got[0].at.Y)
		}
	}
}
