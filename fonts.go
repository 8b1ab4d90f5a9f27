package scope

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Default face sizes in pixels.
const (
	LabelFontSize = 18
	TimeFontSize  = 13
)

// Fonts is the pair of faces a recorder draws text with: Label for grid
// labels and readouts, Time for the chart's time ruling.
//
// Fonts owns the font sources it was created from; Close releases them.
type Fonts struct {
	Label text.Face
	Time  text.Face

	mu      sync.Mutex
	sources []*text.FontSource
}

// NewFonts loads the embedded Go Mono faces at the default sizes.
func NewFonts() (*Fonts, error) {
	return NewFontsFromData(gomonobold.TTF, LabelFontSize, gomono.TTF, TimeFontSize)
}

// NewFontsFromData parses label and time fonts from TrueType/OpenType data.
func NewFontsFromData(label []byte, labelSize float64, timeData []byte, timeSize float64) (*Fonts, error) {
	ls, err := text.NewFontSource(label)
	if err != nil {
		return nil, fmt.Errorf("scope: load label font: %w", err)
	}
	ts, err := text.NewFontSource(timeData)
	if err != nil {
		_ = ls.Close()
		return nil, fmt.Errorf("scope: load time font: %w", err)
	}
	return &Fonts{
		Label:   ls.Face(labelSize),
		Time:    ts.Face(timeSize),
		sources: []*text.FontSource{ls, ts},
	}, nil
}

// Close releases the font sources. Faces must not be used afterwards.
// Close is idempotent.
func (f *Fonts) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var errs []error
	for _, s := range f.sources {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	f.sources = nil
	return errors.Join(errs...)
}
