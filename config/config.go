// Package config loads the YAML scene description used by cmd/scoperec.
//
// A scene names the canvas, the signal, the recorders with their regions
// and the output sink. Default reproduces the classic two-panel layout: a
// strip chart on the left and a polar trace on the right of a 960x544
// frame.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Recorder kinds.
const (
	KindChart  = "chart"
	KindCircle = "circle"
	KindPolar  = "polar"
)

// Output kinds.
const (
	OutputPNG       = "png"
	OutputFFmpeg    = "ffmpeg"
	OutputRecording = "recording"
	OutputRaw       = "raw"
)

// Shapers.
const (
	ShaperBuiltin = "builtin"
	ShaperGoText  = "gotext"
)

// Config is the top-level scene.
type Config struct {
	Canvas    CanvasConfig     `yaml:"canvas"`
	Frames    int              `yaml:"frames"`
	Signal    SignalConfig     `yaml:"signal"`
	Recorders []RecorderConfig `yaml:"recorders"`
	Output    OutputConfig     `yaml:"output"`
	Logging   LoggingConfig    `yaml:"logging"`

	// Locale is a BCP 47 tag used to format labels and readouts.
	Locale string `yaml:"locale"`

	// Logo is an optional image path drawn in the bottom-left corner.
	Logo string `yaml:"logo,omitempty"`

	// Shaper selects the text shaper: builtin or gotext.
	Shaper string `yaml:"shaper"`
}

type CanvasConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FrameRate  float64 `yaml:"frame_rate"`
	Background string  `yaml:"background"`
}

type SignalConfig struct {
	Offset float64        `yaml:"offset"`
	Terms  []HarmonicTerm `yaml:"terms"`

	// StepDegrees is the angle advance per frame.
	StepDegrees float64 `yaml:"step_degrees"`

	// Caption overrides the formula shown under the frame counter.
	Caption string `yaml:"caption,omitempty"`
}

type HarmonicTerm struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase,omitempty"`
}

type RecorderConfig struct {
	Kind      string  `yaml:"kind"`
	Amplitude float64 `yaml:"amplitude"`
	Speed     float64 `yaml:"speed"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height,omitempty"`

	TraceColor     string `yaml:"trace_color,omitempty"`
	MarkerInterval int    `yaml:"marker_interval,omitempty"`
	Capacity       int    `yaml:"capacity,omitempty"`
}

type OutputConfig struct {
	Kind string `yaml:"kind"`

	// Path is a directory for png and recording, a file for ffmpeg and raw.
	Path string `yaml:"path"`

	// Backend names the recording backend (recording output only).
	Backend string `yaml:"backend,omitempty"`

	CRF    int    `yaml:"crf,omitempty"`
	Preset string `yaml:"preset,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the classic scene: a 470x450 strip chart at (5,5) and a
// 450x450 polar trace at (485,5) fed by y = 4 + 6·sin(t), encoded with
// ffmpeg at 30 fps.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:      960,
			Height:     544,
			FrameRate:  30,
			Background: "#c0c0c0",
		},
		Frames: 720,
		Signal: SignalConfig{
			Offset:      4,
			Terms:       []HarmonicTerm{{Amplitude: 6, Frequency: 1}},
			StepDegrees: 1,
		},
		Recorders: []RecorderConfig{
			{Kind: KindChart, Amplitude: 10, Speed: 1, X: 5, Y: 5, Width: 470, Height: 450},
			{Kind: KindPolar, Amplitude: 10, Speed: 0, X: 485, Y: 5, Width: 450},
		},
		Output: OutputConfig{
			Kind:   OutputFFmpeg,
			Path:   "out.mp4",
			CRF:    17,
			Preset: "medium",
		},
		Logging: LoggingConfig{Level: "info"},
		Locale:  "en",
		Shaper:  ShaperBuiltin,
	}
}

// Load reads a YAML scene on top of Default. Unknown fields are rejected.
// A recorders list in the file replaces the default layout.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config: path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML scene on top of Default and validates it.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	cfg.Recorders = nil

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Config{}, errors.New("config: decode yaml: unexpected trailing document")
	}
	if cfg.Recorders == nil {
		cfg.Recorders = Default().Recorders
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
