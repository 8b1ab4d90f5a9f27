package scope

import "github.com/gogpu/gg"

// Style holds the pens and fills a recorder draws with. A Style is built
// once at construction and never reallocated per frame.
type Style struct {
	Pointer    Pen // value pointer glyph, radius vector
	LightGrid  Pen
	Grid       Pen
	ThickGrid  Pen
	Graph      Pen // trace
	DashedLine Pen // centroid guide
	Border     Pen

	GraphFill  gg.RGBA // marker dots
	Background gg.RGBA
	Text       gg.RGBA
}

// DefaultStyle returns the classic recorder palette: blue trace on white,
// grey grid, red pointer.
func DefaultStyle() Style {
	gridColor := gg.RGB(150.0/255, 150.0/255, 150.0/255)
	return Style{
		Pointer:    Pen{Color: gg.Red, Width: 1},
		LightGrid:  Pen{Color: gg.RGB(200.0/255, 200.0/255, 200.0/255), Width: 1},
		Grid:       Pen{Color: gridColor, Width: 1},
		ThickGrid:  Pen{Color: gridColor, Width: 2},
		Graph:      Pen{Color: gg.Blue, Width: 1.5},
		DashedLine: Pen{Color: gg.Blue, Width: 1, Dash: []float64{5, 5}},
		Border:     Pen{Color: gg.Black, Width: 1},
		GraphFill:  gg.Blue,
		Background: gg.White,
		Text:       gg.Black,
	}
}

// WithTrace returns a copy whose trace, markers and centroid guide use c.
func (s Style) WithTrace(c gg.RGBA) Style {
	s.Graph.Color = c
	s.DashedLine.Color = c
	s.DashedLine.Dash = append([]float64(nil), s.DashedLine.Dash...)
	s.GraphFill = c
	return s
}
