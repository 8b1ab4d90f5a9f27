// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/scope"
)

// Context draws into a *gg.Context.
//
// gg reports rasterization failures from Fill and Stroke. Context keeps the
// first one and returns it from Err; drawing continues after a failure so
// a frame is never left half-rendered.
type Context struct {
	dc    *gg.Context
	depth int
	err   error
}

var _ scope.Surface = (*Context)(nil)

// NewContext wraps dc. The caller keeps ownership of dc.
func NewContext(dc *gg.Context) *Context {
	return &Context{dc: dc}
}

// GG returns the wrapped context.
func (c *Context) GG() *gg.Context { return c.dc }

// Err returns the first rendering error since creation or the last Reset.
func (c *Context) Err() error { return c.err }

// Reset clears the recorded error and unwinds any clip left pushed.
func (c *Context) Reset() {
	for c.depth > 0 {
		c.PopClip()
	}
	c.err = nil
}

func (c *Context) check(op string, err error) {
	if err == nil {
		return
	}
	scope.Logger().Warn("surface: draw failed", "op", op, "err", err)
	if c.err == nil {
		c.err = fmt.Errorf("surface: %s: %w", op, err)
	}
}

func (c *Context) setPen(pen scope.Pen) {
	c.dc.SetColor(pen.Color.Color())
	c.dc.SetLineWidth(pen.Width)
	if pen.IsDashed() {
		c.dc.SetDash(pen.Dash...)
	} else {
		c.dc.ClearDash()
	}
}

func (c *Context) stroke(op string, pen scope.Pen) {
	c.setPen(pen)
	c.check(op, c.dc.Stroke())
}

func (c *Context) fill(op string, col gg.RGBA) {
	c.dc.SetColor(col.Color())
	c.check(op, c.dc.Fill())
}

// DrawLine implements scope.Surface.
func (c *Context) DrawLine(pen scope.Pen, a, b scope.ScreenPoint) {
	c.dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	c.stroke("line", pen)
}

// DrawPolyline implements scope.Surface.
func (c *Context) DrawPolyline(pen scope.Pen, pts ...scope.ScreenPoint) {
	if len(pts) < 2 {
		return
	}
	c.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		c.dc.LineTo(float64(p.X), float64(p.Y))
	}
	c.stroke("polyline", pen)
}

// DrawRectangle implements scope.Surface.
func (c *Context) DrawRectangle(pen scope.Pen, r scope.Rect) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.stroke("rectangle", pen)
}

// FillRectangle implements scope.Surface.
func (c *Context) FillRectangle(col gg.RGBA, r scope.Rect) {
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.fill("rectangle", col)
}

// DrawEllipse implements scope.Surface.
func (c *Context) DrawEllipse(pen scope.Pen, r scope.Rect) {
	ctr := r.Center()
	c.dc.DrawEllipse(ctr.X, ctr.Y, r.W/2, r.H/2)
	c.stroke("ellipse", pen)
}

// FillEllipse implements scope.Surface.
func (c *Context) FillEllipse(col gg.RGBA, r scope.Rect) {
	ctr := r.Center()
	c.dc.DrawEllipse(ctr.X, ctr.Y, r.W/2, r.H/2)
	c.fill("ellipse", col)
}

// DrawString implements scope.Surface. gg places text on its baseline, so
// the face ascent is added to the top edge.
func (c *Context) DrawString(s string, face text.Face, col gg.RGBA, at scope.ScreenPoint) {
	if face == nil || s == "" {
		return
	}
	c.dc.SetFont(face)
	c.dc.SetColor(col.Color())
	c.dc.DrawString(s, float64(at.X), float64(at.Y)+face.Metrics().Ascent)
}

// MeasureString implements scope.Surface.
func (c *Context) MeasureString(s string, face text.Face) (w, h float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face)
}

// PushClip implements scope.Surface.
func (c *Context) PushClip(r scope.Rect) {
	c.dc.Push()
	c.dc.ClipRect(r.X, r.Y, r.W, r.H)
	c.depth++
}

// PopClip implements scope.Surface.
func (c *Context) PopClip() {
	if c.depth == 0 {
		return
	}
	c.dc.Pop()
	c.depth--
}

// DrawImage draws img scaled into r.
func (c *Context) DrawImage(img *gg.ImageBuf, r scope.Rect) {
	if img == nil {
		return
	}
	c.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             r.X,
		Y:             r.Y,
		DstWidth:      r.W,
		DstHeight:     r.H,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
}
