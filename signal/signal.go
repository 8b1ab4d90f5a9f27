// Package signal provides the scalar sources that feed scope recorders.
//
// A Source maps a time parameter to a sample value. The animation driver
// advances t by one degree per frame, expressed in radians.
package signal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotFinite is returned by Validate for NaN or infinite coefficients.
var ErrNotFinite = errors.New("signal: coefficient is not finite")

// Source produces the sample value at time t.
type Source interface {
	Value(t float64) float64
}

// Func adapts an ordinary function to Source.
type Func func(t float64) float64

// Value implements Source.
func (f Func) Value(t float64) float64 { return f(t) }

// Harmonic is one sine term: Amplitude * sin(Frequency*t + Phase).
type Harmonic struct {
	Amplitude float64
	Frequency float64
	Phase     float64
}

// Value implements Source.
func (h Harmonic) Value(t float64) float64 {
	return h.Amplitude * math.Sin(h.Frequency*t+h.Phase)
}

// Series is a constant offset plus a sum of harmonics.
//
// The default scene signal is Series{Offset: 4, Terms: []Harmonic{{6, 1, 0}}},
// which swings between -2 and 10.
type Series struct {
	Offset float64
	Terms  []Harmonic
}

// Value implements Source.
func (s Series) Value(t float64) float64 {
	v := s.Offset
	for _, h := range s.Terms {
		v += h.Value(t)
	}
	return v
}

// Peak returns the largest magnitude the series can reach: |Offset| plus
// the sum of |Amplitude| over all terms.
func (s Series) Peak() float64 {
	p := math.Abs(s.Offset)
	for _, h := range s.Terms {
		p += math.Abs(h.Amplitude)
	}
	return p
}

// Validate reports the first non-finite coefficient.
func (s Series) Validate() error {
	if !finite(s.Offset) {
		return fmt.Errorf("offset %v: %w", s.Offset, ErrNotFinite)
	}
	for i, h := range s.Terms {
		for _, c := range []struct {
			name string
			v    float64
		}{{"amplitude", h.Amplitude}, {"frequency", h.Frequency}, {"phase", h.Phase}} {
			if !finite(c.v) {
				return fmt.Errorf("term %d %s %v: %w", i, c.name, c.v, ErrNotFinite)
			}
		}
	}
	return nil
}

// String renders the series as a caption formula, e.g. "y=4+6*sin(t)".
func (s Series) String() string {
	var b strings.Builder
	b.WriteString("y=")
	wrote := false
	if s.Offset != 0 || len(s.Terms) == 0 {
		b.WriteString(num(s.Offset))
		wrote = true
	}
	for _, h := range s.Terms {
		if h.Amplitude == 0 {
			continue
		}
		a := h.Amplitude
		switch {
		case a < 0:
			b.WriteByte('-')
			a = -a
		case wrote:
			b.WriteByte('+')
		}
		if a != 1 {
			b.WriteString(num(a))
			b.WriteByte('*')
		}
		b.WriteString("sin(")
		b.WriteString(arg(h.Frequency, h.Phase))
		b.WriteByte(')')
		wrote = true
	}
	if !wrote {
		b.WriteString("0")
	}
	return b.String()
}

func arg(freq, phase float64) string {
	var s string
	switch freq {
	case 0:
		return num(phase)
	case 1:
		s = "t"
	case -1:
		s = "-t"
	default:
		s = num(freq) + "*t"
	}
	switch {
	case phase > 0:
		s += "+" + num(phase)
	case phase < 0:
		s += num(phase)
	}
	return s
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
