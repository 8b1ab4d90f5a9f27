package config

import (
	"errors"
	"fmt"

	"github.com/gogpu/scope"
	"github.com/gogpu/scope/signal"
)

// Series converts the signal section to a signal.Series.
func (s SignalConfig) Series() signal.Series {
	terms := make([]signal.Harmonic, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = signal.Harmonic{Amplitude: t.Amplitude, Frequency: t.Frequency, Phase: t.Phase}
	}
	return signal.Series{Offset: s.Offset, Terms: terms}
}

// Geometry returns the recorder's construction geometry.
func (r RecorderConfig) Geometry() scope.Geometry {
	return scope.Geometry{
		Amplitude: r.Amplitude,
		Speed:     r.Speed,
		X:         r.X,
		Y:         r.Y,
		Width:     r.Width,
		Height:    r.Height,
	}
}

// Options returns the recorder options the entry asks for, followed by
// shared.
func (r RecorderConfig) Options(shared ...scope.Option) ([]scope.Option, error) {
	var opts []scope.Option
	if r.TraceColor != "" {
		c, err := ParseColor(r.TraceColor)
		if err != nil {
			return nil, &FieldError{Field: "trace_color", Err: err}
		}
		opts = append(opts, scope.WithStyle(scope.DefaultStyle().WithTrace(c)))
	}
	if r.MarkerInterval > 0 {
		opts = append(opts, scope.WithMarkerInterval(r.MarkerInterval))
	}
	if r.Capacity > 0 {
		opts = append(opts, scope.WithCapacity(r.Capacity))
	}
	return append(opts, shared...), nil
}

// Build creates the recorder described by r.
func (r RecorderConfig) Build(shared ...scope.Option) (scope.Recorder, error) {
	opts, err := r.Options(shared...)
	if err != nil {
		return nil, err
	}
	g := r.Geometry()
	switch r.Kind {
	case KindChart:
		c, err := scope.NewChartRecorder(g, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindCircle:
		c, err := scope.NewCircleRecorder(g, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindPolar:
		p, err := scope.NewPolarRecorder(g, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fieldErr("kind", "unknown recorder %q", r.Kind)
}

// BuildRecorders creates every recorder of the scene. On failure the
// recorders already built are closed.
func (c Config) BuildRecorders(shared ...scope.Option) ([]scope.Recorder, error) {
	recs := make([]scope.Recorder, 0, len(c.Recorders))
	for i, rc := range c.Recorders {
		r, err := rc.Build(shared...)
		if err != nil {
			closeErr := CloseAll(recs)
			return nil, errors.Join(fmt.Errorf("config: recorders[%d] (%s): %w", i, rc.Kind, err), closeErr)
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// CloseAll closes every recorder and joins their errors.
func CloseAll(recs []scope.Recorder) error {
	var errs []error
	for _, r := range recs {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}
