// Package scope provides signal scope recorders for gg: animated strip
// charts and radial plots of a scalar signal, redrawn every frame from a
// bounded sample history.
//
// # Overview
//
// A recorder owns a history of clamped samples and draws its assigned
// rectangle of a frame from scratch on every Render. Three recorders are
// provided:
//
//   - ChartRecorder: left-scrolling strip chart with a time ruling
//   - CircleRecorder: clock-face plot whose hand and grid turn with time
//   - PolarRecorder: polar trace with a radius vector to the newest sample
//
// The radial recorders also draw the centroid "M" of their trace with a
// numeric readout.
//
// # Quick Start
//
//	chart, err := scope.NewChartRecorder(scope.Geometry{
//	    Amplitude: 10, Speed: 1, X: 5, Y: 5, Width: 470, Height: 450,
//	})
//	if err != nil {
//	    return err
//	}
//	defer chart.Close()
//
//	dc := gg.NewContext(960, 544)
//	s := surface.NewContext(dc)
//	for t := 0; t < frames; t++ {
//	    chart.RegisterValue(signal(t))
//	    chart.Render(s)
//	    encode(dc.Image())
//	    chart.NextStep()
//	}
//
// # Coordinate System
//
// Screen coordinates follow gg: origin at top-left, y increasing down.
// Signal values map to pixels through K = (Height - PointerHeight) /
// (2 * Amplitude); a value of zero sits on the region's horizontal center.
//
// # Concurrency
//
// Recorders are driven from a single tick source and are not safe for
// concurrent use. Recorders drawing into one frame must render serially.
package scope
