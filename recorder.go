package scope

import (
	"log/slog"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/text/message"

	"github.com/gogpu/scope/internal/ring"
)

// Recorder is the per-frame contract a tick driver uses.
//
// Per tick the driver calls RegisterValue, then Render, then NextStep.
// Recorders are NOT safe for concurrent use.
type Recorder interface {
	// RegisterValue clamps v to [-Amplitude, Amplitude] and appends it to the
	// history, evicting the oldest sample when the bound is exceeded.
	RegisterValue(v float64)

	// Render redraws the recorder's whole region from the buffered history.
	// It never mutates the history.
	Render(s Surface)

	// NextStep advances the step counter by one.
	NextStep()

	// Clear empties the history and resets the step counter to zero.
	Clear()

	// Close releases the fonts the recorder created. It is idempotent.
	Close() error

	// Geometry returns the construction geometry.
	Geometry() Geometry

	// Len returns the number of buffered samples.
	Len() int

	// Step returns the step counter.
	Step() int
}

// base holds the state and drawing primitives shared by all recorders.
type base struct {
	kind    string
	geom    Geometry
	k       float64
	history *ring.Float
	step    int

	style          Style
	fonts          *Fonts
	ownFonts       bool
	markerInterval int
	printer        *message.Printer
	log            *slog.Logger

	saturated bool
	closeOnce sync.Once
	closeErr  error
}

// init prepares b in place. Fonts are loaded unless the options share them.
func (b *base) init(kind string, g Geometry, capacity int, o options) error {
	fonts := o.fonts
	own := false
	if fonts == nil {
		f, err := NewFonts()
		if err != nil {
			return err
		}
		fonts = f
		own = true
	}

	b.kind = kind
	b.geom = g
	b.k = g.K()
	b.history = ring.New(capacity)
	b.step = 1
	b.style = o.style
	b.fonts = fonts
	b.ownFonts = own
	b.markerInterval = o.markerInterval
	b.printer = message.NewPrinter(o.locale)
	b.log = Logger().With("recorder", kind)

	b.log.Debug("recorder created",
		"amplitude", g.Amplitude, "speed", g.Speed,
		"x", g.X, "y", g.Y, "width", g.Width, "height", g.Height,
		"k", b.k, "capacity", b.history.Cap())
	return nil
}

// RegisterValue implements Recorder.
func (b *base) RegisterValue(v float64) {
	if _, evicted := b.history.Push(b.geom.Clamp(v)); evicted && !b.saturated {
		b.saturated = true
		b.log.Debug("history saturated, evicting oldest samples", "capacity", b.history.Cap())
	}
}

// NextStep implements Recorder.
func (b *base) NextStep() {
	b.step++
}

// Clear implements Recorder.
func (b *base) Clear() {
	b.history.Reset()
	b.step = 0
	b.saturated = false
}

// Close implements Recorder.
func (b *base) Close() error {
	b.closeOnce.Do(func() {
		if b.ownFonts {
			b.closeErr = b.fonts.Close()
		}
	})
	return b.closeErr
}

// Geometry implements Recorder.
func (b *base) Geometry() Geometry { return b.geom }

// Len implements Recorder.
func (b *base) Len() int { return b.history.Len() }

// Step implements Recorder.
func (b *base) Step() int { return b.step }

// Values returns a copy of the history, oldest first.
func (b *base) Values() []float64 { return b.history.Slice() }

// K returns the signal-to-pixel scale factor.
func (b *base) K() float64 { return b.k }

// ScaledValue maps a signal value to a vertical pixel ordinate centered in
// the region: centerY - K*v.
func (b *base) ScaledValue(v float64) float64 {
	return float64(b.geom.Y) + float64(b.geom.Height)/2 - b.k*v
}

// RenderPointer draws the triangular value pointer with its tip at (x, v)
// and two vertical guide lines spanning the region. With facingRight the
// glyph body extends to the left of x and the tip points right.
func (b *base) RenderPointer(s Surface, v, x float64, facingRight bool) {
	const (
		neck = 5
		w    = PointerWidth
		h    = PointerHeight / 2.0
	)
	dir := 1.0
	if facingRight {
		dir = -1
	}
	pen := b.style.Pointer
	s.DrawPolyline(pen,
		Pt(x, v).Screen(),
		Pt(x+dir*neck, v-h).Screen(),
		Pt(x+dir*(w-1), v-h).Screen(),
		Pt(x+dir*(w-1), v+h).Screen(),
		Pt(x+dir*neck, v+h).Screen(),
		Pt(x, v).Screen(),
	)

	top := float64(b.geom.Y)
	bottom := top + float64(b.geom.Height)
	for _, gx := range []float64{x + dir*(w-1), x + dir*(w-5)} {
		s.DrawLine(pen, Pt(gx, top).Screen(), Pt(gx, bottom).Screen())
	}
}

// markerDue reports whether a trace marker belongs at the given step offset.
func (b *base) markerDue(step int) bool {
	return step%b.markerInterval == 0
}

// renderMarker draws the small filled dot placed along the trace.
func (b *base) renderMarker(s Surface, p Point) {
	s.FillEllipse(b.style.GraphFill, RectAround(p, 2))
}

// renderTextBlock draws lines of text stacked downward from top, with the
// block's right edge at right, over a background patch.
func (b *base) renderTextBlock(s Surface, face text.Face, lines []string, right, top float64) {
	var width, lineHeight float64
	for _, l := range lines {
		w, h := s.MeasureString(l, face)
		width = max(width, w)
		lineHeight = max(lineHeight, h)
	}
	left := right - width
	s.FillRectangle(b.style.Background, NewRect(left, top, width, lineHeight*float64(len(lines))))
	for i, l := range lines {
		s.DrawString(l, face, b.style.Text, Pt(left, top+float64(i)*lineHeight).Screen())
	}
}
