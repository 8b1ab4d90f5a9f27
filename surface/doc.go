// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface adapts gg drawing targets to the scope.Surface
// capability.
//
// Two adapters are provided:
//
//   - Context draws immediately into a *gg.Context (CPU rasterizer, or the
//     GPU accelerator when one is registered)
//   - Recording captures drawing commands into a *recording.Recorder for
//     later playback to any registered recording backend
//
// # Usage
//
//	dc := gg.NewContext(960, 544)
//	s := surface.NewContext(dc)
//	chart.Render(s)
//	if err := s.Err(); err != nil {
//	    return err
//	}
//	_ = dc.SavePNG("frame.png")
//
// Adapters are NOT thread-safe and inherit the concurrency rules of the
// target they wrap.
package surface
