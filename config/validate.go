package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"
)

// ErrInvalid is matched by every FieldError.
var ErrInvalid = errors.New("config: invalid value")

// FieldError reports the scene field that failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalid) hold for every FieldError.
func (e *FieldError) Is(target error) bool { return target == ErrInvalid }

func fieldErr(field string, format string, args ...any) error {
	return &FieldError{Field: field, Err: fmt.Errorf(format, args...)}
}

// Validate checks the scene. Recorder geometry is checked again, in full,
// when the recorders are built.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fieldErr("canvas", "size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if !(c.Canvas.FrameRate > 0) || math.IsInf(c.Canvas.FrameRate, 0) {
		return fieldErr("canvas.frame_rate", "%v must be positive", c.Canvas.FrameRate)
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		return &FieldError{Field: "canvas.background", Err: err}
	}
	if c.Frames < 0 {
		return fieldErr("frames", "%d must not be negative", c.Frames)
	}
	if err := c.Signal.Series().Validate(); err != nil {
		return &FieldError{Field: "signal", Err: err}
	}
	if len(c.Recorders) == 0 {
		return fieldErr("recorders", "at least one recorder is required")
	}
	for i, r := range c.Recorders {
		if err := r.validate(); err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Field = fmt.Sprintf("recorders[%d].%s", i, fe.Field)
			}
			return err
		}
	}
	switch c.Output.Kind {
	case OutputPNG, OutputFFmpeg, OutputRecording, OutputRaw:
	default:
		return fieldErr("output.kind", "unknown output %q", c.Output.Kind)
	}
	if c.Output.Path == "" {
		return fieldErr("output.path", "must not be empty")
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return &FieldError{Field: "logging.level", Err: err}
	}
	if _, err := c.Language(); err != nil {
		return &FieldError{Field: "locale", Err: err}
	}
	switch c.Shaper {
	case "", ShaperBuiltin, ShaperGoText:
	default:
		return fieldErr("shaper", "unknown shaper %q", c.Shaper)
	}
	return nil
}

func (r RecorderConfig) validate() error {
	switch r.Kind {
	case KindChart, KindCircle, KindPolar:
	default:
		return fieldErr("kind", "unknown recorder %q", r.Kind)
	}
	if r.TraceColor != "" {
		if _, err := ParseColor(r.TraceColor); err != nil {
			return &FieldError{Field: "trace_color", Err: err}
		}
	}
	if r.MarkerInterval < 0 {
		return fieldErr("marker_interval", "%d must not be negative", r.MarkerInterval)
	}
	if r.Capacity < 0 {
		return fieldErr("capacity", "%d must not be negative", r.Capacity)
	}
	return nil
}

// Language parses the locale tag. An empty locale selects English.
func (c Config) Language() (language.Tag, error) {
	if c.Locale == "" {
		return language.English, nil
	}
	return language.Parse(c.Locale)
}

// ParseColor parses a "#rgb" or "#rrggbb" hex color.
func ParseColor(s string) (gg.RGBA, error) {
	col, err := colorful.Hex(expandShortHex(strings.TrimSpace(s)))
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	col = col.Clamped()
	return gg.RGBA{R: col.R, G: col.G, B: col.B, A: 1}, nil
}

func expandShortHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (must be error, warn, info, or debug)", level)
	}
}
