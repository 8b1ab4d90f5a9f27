package animation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/scope"
	"github.com/gogpu/scope/surface"
)

// RecordingSink captures each frame as gg recording commands and replays it
// through the named recording backend. When the backend can write files and
// Dir is set, frame n is saved to Dir as Pattern.
//
// The built-in "raster" backend must be linked in by the caller:
//
//	import _ "github.com/gogpu/gg/recording/backends/raster"
type RecordingSink struct {
	Backend string
	Dir     string
	Pattern string

	width, height int
	rec           *recording.Recorder
	last          *recording.Recording
	commands      int
}

var _ Sink = (*RecordingSink)(nil)

// NewRecordingSink returns a sink replaying frames of the given size into
// backend. It fails when no backend of that name is registered.
func NewRecordingSink(backend, dir string, width, height int) (*RecordingSink, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("animation: invalid frame size %dx%d", width, height)
	}
	if !recording.IsRegistered(backend) {
		return nil, fmt.Errorf("animation: recording backend %q not registered (have %v)", backend, recording.Backends())
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("animation: create frame dir: %w", err)
		}
	}
	return &RecordingSink{
		Backend: backend,
		Dir:     dir,
		Pattern: DefaultPattern,
		width:   width,
		height:  height,
	}, nil
}

// Begin implements Sink.
func (s *RecordingSink) Begin(_ int, bg gg.RGBA) (Canvas, error) {
	s.rec = recording.NewRecorder(s.width, s.height)
	s.rec.ClearWithColor(bg)
	return surface.NewRecording(s.rec), nil
}

// Commit implements Sink.
func (s *RecordingSink) Commit(n int) error {
	if s.rec == nil {
		return fmt.Errorf("animation: frame %d: %w", n, ErrNotBegun)
	}
	r := s.rec.FinishRecording()
	s.rec = nil
	s.last = r
	s.commands += len(r.Commands())

	backend, err := recording.NewBackend(s.Backend)
	if err != nil {
		return fmt.Errorf("animation: frame %d: %w", n, err)
	}
	if err := r.Playback(backend); err != nil {
		return fmt.Errorf("animation: frame %d playback: %w", n, err)
	}
	scope.Logger().Debug("frame replayed", "frame", n, "backend", s.Backend,
		"commands", len(r.Commands()), "paths", r.Resources().PathCount())

	fb, ok := backend.(recording.FileBackend)
	if !ok || s.Dir == "" {
		return nil
	}
	path := filepath.Join(s.Dir, fmt.Sprintf(s.Pattern, n))
	if err := fb.SaveToFile(path); err != nil {
		return fmt.Errorf("animation: frame %d: %w", n, err)
	}
	return nil
}

// Last returns the most recently committed recording, or nil.
func (s *RecordingSink) Last() *recording.Recording { return s.last }

// Commands returns the total number of commands recorded so far.
func (s *RecordingSink) Commands() int { return s.commands }

// Close implements Sink.
func (s *RecordingSink) Close() error {
	s.rec = nil
	return nil
}
