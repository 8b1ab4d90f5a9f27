package animation

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/gogpu/scope"
	"github.com/gogpu/scope/surface"
)

// DefaultPattern names frame files: frame-0000.png, frame-0001.png, ...
const DefaultPattern = "frame-%04d.png"

// ErrNotBegun is returned by Commit when no frame is open.
var ErrNotBegun = errors.New("animation: commit before begin")

// Canvas is the drawing target of one frame.
type Canvas interface {
	scope.Surface

	// DrawImage draws img scaled into r.
	DrawImage(img *gg.ImageBuf, r scope.Rect)
}

// Sink receives rendered frames.
type Sink interface {
	// Begin returns the canvas for frame n cleared to bg.
	Begin(n int, bg gg.RGBA) (Canvas, error)

	// Commit finishes frame n. The canvas returned by Begin must not be
	// used afterwards.
	Commit(n int) error

	// Close flushes and releases the sink.
	Close() error
}

// raster is the gg.Context frame shared by the pixel sinks. The context is
// allocated once and cleared per frame.
type raster struct {
	width, height int
	dc            *gg.Context
	s             *surface.Context
}

func newRaster(width, height int) (raster, error) {
	if width <= 0 || height <= 0 {
		return raster{}, fmt.Errorf("animation: invalid frame size %dx%d", width, height)
	}
	return raster{width: width, height: height}, nil
}

func (r *raster) begin(bg gg.RGBA) *surface.Context {
	if r.dc == nil {
		r.dc = gg.NewContext(r.width, r.height)
		r.s = surface.NewContext(r.dc)
	}
	r.s.Reset()
	r.dc.ClearWithColor(bg)
	return r.s
}

// openFrame returns the open frame's surface error, or ErrNotBegun when
// no frame is open.
func (r *raster) openFrame(n int) error {
	if r.dc == nil {
		return fmt.Errorf("animation: frame %d: %w", n, ErrNotBegun)
	}
	if err := r.s.Err(); err != nil {
		return fmt.Errorf("animation: frame %d: %w", n, err)
	}
	return nil
}

// rgba returns the frame pixels as tightly packed RGBA rows.
func (r *raster) rgba() ([]byte, error) {
	if err := r.dc.FlushGPU(); err != nil {
		return nil, err
	}
	img := r.dc.Image()
	if m, ok := img.(*image.RGBA); ok && m.Stride == 4*m.Rect.Dx() {
		return m.Pix, nil
	}
	m := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(m, m.Bounds(), img, img.Bounds().Min, draw.Src)
	return m.Pix, nil
}

func (r *raster) close() error {
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc, r.s = nil, nil
	return err
}

// PNGSink writes every frame to Dir as a PNG file named by Pattern.
type PNGSink struct {
	Dir     string
	Pattern string

	raster
}

var _ Sink = (*PNGSink)(nil)

// NewPNGSink creates dir if needed and returns a sink for frames of the
// given size.
func NewPNGSink(dir string, width, height int) (*PNGSink, error) {
	r, err := newRaster(width, height)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("animation: create frame dir: %w", err)
	}
	return &PNGSink{Dir: dir, Pattern: DefaultPattern, raster: r}, nil
}

// Begin implements Sink.
func (p *PNGSink) Begin(_ int, bg gg.RGBA) (Canvas, error) {
	return p.begin(bg), nil
}

// Commit implements Sink.
func (p *PNGSink) Commit(n int) error {
	if err := p.openFrame(n); err != nil {
		return err
	}
	path := filepath.Join(p.Dir, fmt.Sprintf(p.Pattern, n))
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("animation: frame %d: %w", n, err)
	}
	return nil
}

// Close implements Sink.
func (p *PNGSink) Close() error {
	return p.close()
}

// RawSink streams each frame as width*height*4 bytes of RGBA to W.
type RawSink struct {
	W io.Writer

	raster
}

var _ Sink = (*RawSink)(nil)

// NewRawSink returns a sink writing frames of the given size to w.
func NewRawSink(w io.Writer, width, height int) (*RawSink, error) {
	r, err := newRaster(width, height)
	if err != nil {
		return nil, err
	}
	return &RawSink{W: w, raster: r}, nil
}

// Begin implements Sink.
func (s *RawSink) Begin(_ int, bg gg.RGBA) (Canvas, error) {
	return s.begin(bg), nil
}

// Commit implements Sink.
func (s *RawSink) Commit(n int) error {
	if err := s.openFrame(n); err != nil {
		return err
	}
	pix, err := s.rgba()
	if err != nil {
		return fmt.Errorf("animation: frame %d: %w", n, err)
	}
	if _, err := s.W.Write(pix); err != nil {
		return fmt.Errorf("animation: write frame %d: %w", n, err)
	}
	return nil
}

// Close implements Sink. W is closed when it is an io.Closer.
func (s *RawSink) Close() error {
	err := s.close()
	if c, ok := s.W.(io.Closer); ok {
		err = errors.Join(err, c.Close())
	}
	return err
}
