// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/scope"
)

// Recording captures drawing into a *recording.Recorder.
//
// The captured commands can be replayed to any recording backend, for
// example the raster backend for PNG output:
//
//	rec := recording.NewRecorder(960, 544)
//	chart.Render(surface.NewRecording(rec))
//	backend, _ := recording.NewBackend("raster")
//	_ = rec.FinishRecording().Playback(backend)
type Recording struct {
	rec   *recording.Recorder
	depth int
}

var _ scope.Surface = (*Recording)(nil)

// NewRecording wraps rec. The caller keeps ownership of rec.
func NewRecording(rec *recording.Recorder) *Recording {
	return &Recording{rec: rec}
}

// Recorder returns the wrapped recorder.
func (r *Recording) Recorder() *recording.Recorder { return r.rec }

func (r *Recording) stroke(pen scope.Pen) {
	r.rec.SetColor(pen.Color)
	r.rec.SetLineWidth(pen.Width)
	if pen.IsDashed() {
		r.rec.SetDash(pen.Dash...)
	} else {
		r.rec.ClearDash()
	}
	r.rec.Stroke()
}

func (r *Recording) fill(c gg.RGBA) {
	r.rec.SetColor(c)
	r.rec.Fill()
}

// DrawLine implements scope.Surface.
func (r *Recording) DrawLine(pen scope.Pen, a, b scope.ScreenPoint) {
	r.rec.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	r.stroke(pen)
}

// DrawPolyline implements scope.Surface.
func (r *Recording) DrawPolyline(pen scope.Pen, pts ...scope.ScreenPoint) {
	if len(pts) < 2 {
		return
	}
	r.rec.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		r.rec.LineTo(float64(p.X), float64(p.Y))
	}
	r.stroke(pen)
}

// DrawRectangle implements scope.Surface.
func (r *Recording) DrawRectangle(pen scope.Pen, rect scope.Rect) {
	r.rec.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	r.stroke(pen)
}

// FillRectangle implements scope.Surface.
func (r *Recording) FillRectangle(c gg.RGBA, rect scope.Rect) {
	r.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
	r.rec.FillRectangle(rect.X, rect.Y, rect.W, rect.H)
}

// DrawEllipse implements scope.Surface.
func (r *Recording) DrawEllipse(pen scope.Pen, rect scope.Rect) {
	ctr := rect.Center()
	r.rec.DrawEllipse(ctr.X, ctr.Y, rect.W/2, rect.H/2)
	r.stroke(pen)
}

// FillEllipse implements scope.Surface.
func (r *Recording) FillEllipse(c gg.RGBA, rect scope.Rect) {
	ctr := rect.Center()
	r.rec.DrawEllipse(ctr.X, ctr.Y, rect.W/2, rect.H/2)
	r.fill(c)
}

// DrawString implements scope.Surface.
func (r *Recording) DrawString(s string, face text.Face, c gg.RGBA, at scope.ScreenPoint) {
	if face == nil || s == "" {
		return
	}
	r.rec.SetFont(face)
	r.rec.SetFontSize(face.Size())
	r.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
	r.rec.DrawString(s, float64(at.X), float64(at.Y)+face.Metrics().Ascent)
}

// MeasureString implements scope.Surface.
func (r *Recording) MeasureString(s string, face text.Face) (w, h float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face)
}

// PushClip implements scope.Surface.
func (r *Recording) PushClip(rect scope.Rect) {
	r.rec.Save()
	r.rec.DrawRectangle(rect.X, rect.Y, rect.W, rect.H)
	r.rec.Clip()
	r.depth++
}

// PopClip implements scope.Surface.
func (r *Recording) PopClip() {
	if r.depth == 0 {
		return
	}
	r.rec.Restore()
	r.depth--
}

// DrawImage records img scaled into rect.
func (r *Recording) DrawImage(img *gg.ImageBuf, rect scope.Rect) {
	if img == nil {
		return
	}
	r.rec.DrawImageScaled(img.ToStdImage(), rect.X, rect.Y, rect.W, rect.H)
}
