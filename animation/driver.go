package animation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/scope"
	"github.com/gogpu/scope/signal"
)

// Overlay layout.
const (
	LogoSize    = 64
	logoMargin  = 8
	captionLeft = 96
	captionRise = 68
)

// Silver is the default frame background.
var Silver = gg.RGB(192.0/255, 192.0/255, 192.0/255)

// ErrNoSink is returned by Run when the driver has no sink.
var ErrNoSink = errors.New("animation: no sink")

// Driver ticks a signal through a set of recorders and emits one frame per
// tick.
type Driver struct {
	Width, Height int

	// Source is sampled at the current angle in radians.
	Source signal.Source

	// StepDegrees is the angle advance per frame. Zero means one degree.
	StepDegrees float64

	// Recorders are rendered in order into every frame.
	Recorders []scope.Recorder

	Sink Sink

	// Background fills each frame before the recorders draw. The zero
	// value selects Silver.
	Background gg.RGBA

	// Logo is drawn LogoSize square in the bottom-left corner when set.
	Logo *gg.ImageBuf

	// Caption is shown as "Formula: ..." under the frame counter. When
	// empty and Source implements fmt.Stringer, its String is used.
	Caption string

	// Fonts draws the caption. Run loads the default fonts when nil.
	Fonts *scope.Fonts

	angle float64
	frame int
}

// Frame returns the number of frames committed so far.
func (d *Driver) Frame() int { return d.frame }

// Angle returns the current signal angle in degrees.
func (d *Driver) Angle() float64 { return d.angle }

// Run renders frames frames, stopping early with ctx.Err() when ctx is
// canceled between frames. Run may be called again to continue the
// animation.
func (d *Driver) Run(ctx context.Context, frames int) error {
	if d.Sink == nil {
		return ErrNoSink
	}
	if d.Source == nil {
		return errors.New("animation: no signal source")
	}
	fonts := d.Fonts
	if fonts == nil {
		f, err := scope.NewFonts()
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		fonts = f
	}
	bg := d.Background
	if bg == (gg.RGBA{}) {
		bg = Silver
	}
	step := d.StepDegrees
	if step == 0 {
		step = 1
	}
	caption := d.caption()

	log := scope.Logger()
	log.Info("animation started", "frames", frames, "recorders", len(d.Recorders),
		"size", fmt.Sprintf("%dx%d", d.Width, d.Height))
	start := time.Now()

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			log.Info("animation canceled", "frame", d.frame)
			return ctx.Err()
		default:
		}

		d.angle += step
		v := d.Source.Value(d.angle * math.Pi / 180)
		for _, r := range d.Recorders {
			r.RegisterValue(v)
		}

		n := d.frame
		c, err := d.Sink.Begin(n, bg)
		if err != nil {
			return err
		}
		for _, r := range d.Recorders {
			r.Render(c)
		}
		d.drawOverlay(c, fonts, n, caption)
		if err := d.Sink.Commit(n); err != nil {
			return err
		}
		d.frame++

		for _, r := range d.Recorders {
			r.NextStep()
		}
		if n%int(scope.DefaultFrameRate) == 0 {
			log.Debug("frame committed", "frame", n, "value", v)
		}
	}

	log.Info("animation finished", "frames", frames, "elapsed", time.Since(start))
	return nil
}

func (d *Driver) caption() string {
	if d.Caption != "" {
		return d.Caption
	}
	if s, ok := d.Source.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

// drawOverlay draws the logo and the frame counter block at the bottom left.
func (d *Driver) drawOverlay(c Canvas, fonts *scope.Fonts, n int, caption string) {
	h := float64(d.Height)
	if d.Logo != nil {
		c.DrawImage(d.Logo, scope.NewRect(logoMargin, h-LogoSize-logoMargin, LogoSize, LogoSize))
	}

	lines := []string{fmt.Sprintf("Frame: %04d", n)}
	if caption != "" {
		lines = append(lines, "Formula: "+caption)
	}
	var width, lineHeight float64
	for _, l := range lines {
		w, lh := c.MeasureString(l, fonts.Label)
		width = max(width, w)
		lineHeight = max(lineHeight, lh)
	}
	top := h - captionRise
	c.FillRectangle(gg.White, scope.NewRect(captionLeft, top, width, lineHeight*float64(len(lines))))
	for i, l := range lines {
		c.DrawString(l, fonts.Label, gg.Black, scope.Pt(captionLeft, top+float64(i)*lineHeight).Screen())
	}
}
