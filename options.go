package scope

import (
	"math"

	"golang.org/x/text/language"
)

// Option configures a recorder during creation.
//
// Example:
//
//	// Default palette, private fonts
//	rec, err := scope.NewChartRecorder(geom)
//
//	// Shared fonts and a green trace
//	rec, err := scope.NewChartRecorder(geom,
//	    scope.WithFonts(fonts),
//	    scope.WithStyle(scope.DefaultStyle().WithTrace(gg.Hex("#2a2"))))
type Option func(*options)

type options struct {
	style          Style
	fonts          *Fonts // externally owned when non-nil
	markerInterval int
	frameRate      float64
	capacity       int
	locale         language.Tag
}

func defaultOptions() options {
	return options{
		style:          DefaultStyle(),
		markerInterval: DefaultMarkerInterval,
		frameRate:      DefaultFrameRate,
		capacity:       DefaultRadialCapacity,
		locale:         language.English,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithStyle sets the pens and fills used for drawing.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithFonts shares an externally owned font bundle. The recorder does not
// close fonts it did not create.
func WithFonts(f *Fonts) Option {
	return func(o *options) {
		o.fonts = f
	}
}

// WithMarkerInterval sets the number of steps between trace markers.
// Values below 1 are ignored.
func WithMarkerInterval(steps int) Option {
	return func(o *options) {
		if steps >= 1 {
			o.markerInterval = steps
		}
	}
}

// WithFrameRate sets the frame rate used to space the chart's time ruling.
// Non-positive values are ignored.
func WithFrameRate(fps float64) Option {
	return func(o *options) {
		if fps > 0 && !math.IsInf(fps, 1) {
			o.frameRate = fps
		}
	}
}

// WithCapacity overrides the history bound of radial recorders.
// ChartRecorder always sizes its history to the visible window.
// Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.capacity = n
		}
	}
}

// WithLocale selects the locale used to format labels and readouts.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}
