package animation

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/recording/backends/raster"

	"github.com/gogpu/scope"
	"github.com/gogpu/scope/signal"
)

func TestRawSinkFrameBytes(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewRawSink(&buf, 16, 8)
	if err != nil {
		t.Fatal(err)
	}
	for n := 0; n < 2; n++ {
		c, err := s.Begin(n, gg.Red)
		if err != nil {
			t.Fatal(err)
		}
		c.FillRectangle(gg.Blue, scope.NewRect(0, 0, 4, 4))
		if err := s.Commit(n); err != nil {
			t.Fatalf("Commit(%d): %v", n, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	const frame = 16 * 8 * 4
	if buf.Len() != 2*frame {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), 2*frame)
	}
	// Bottom-right pixel of the second frame keeps the background.
	px := buf.Bytes()[2*frame-4:]
	if px[0] != 255 || px[1] != 0 || px[2] != 0 || px[3] != 255 {
		t.Errorf("background pixel = %v, want opaque red", px)
	}
}

func TestRawSinkRejectsEmptyFrame(t *testing.T) {
	if _, err := NewRawSink(&bytes.Buffer{}, 0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestCommitBeforeBegin(t *testing.T) {
	png, err := NewPNGSink(t.TempDir(), 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := NewRawSink(&bytes.Buffer{}, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := NewRecordingSink("raster", "", 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []Sink{png, raw, rec} {
		if err := s.Commit(0); !errors.Is(err, ErrNotBegun) {
			t.Errorf("%T.Commit before Begin = %v, want ErrNotBegun", s, err)
		}
	}

	// A recording frame is consumed by its Commit.
	if _, err := rec.Begin(0, gg.White); err != nil {
		t.Fatal(err)
	}
	if err := rec.Commit(0); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := rec.Commit(0); !errors.Is(err, ErrNotBegun) {
		t.Errorf("second Commit = %v, want ErrNotBegun", err)
	}

	// A closed raster sink has no open frame.
	if _, err := png.Begin(0, gg.White); err != nil {
		t.Fatal(err)
	}
	if err := png.Close(); err != nil {
		t.Fatal(err)
	}
	if err := png.Commit(0); !errors.Is(err, ErrNotBegun) {
		t.Errorf("Commit after Close = %v, want ErrNotBegun", err)
	}
}

func TestPNGSinkWritesNumberedFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	s, err := NewPNGSink(dir, 32, 24)
	if err != nil {
		t.Fatal(err)
	}
	for n := 0; n < 3; n++ {
		if _, err := s.Begin(n, Silver); err != nil {
			t.Fatal(err)
		}
		if err := s.Commit(n); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"frame-0000.png", "frame-0001.png", "frame-0002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRecordingSink(t *testing.T) {
	if _, err := NewRecordingSink("no-such-backend", "", 10, 10); err == nil {
		t.Fatal("expected error for unregistered backend")
	}

	dir := t.TempDir()
	s, err := NewRecordingSink("raster", dir, 200, 150)
	if err != nil {
		t.Fatal(err)
	}
	chart, err := scope.NewChartRecorder(
		scope.Geometry{Amplitude: 10, Speed: 1, X: 5, Y: 5, Width: 190, Height: 100},
		scope.WithFonts(sharedFonts(t)))
	if err != nil {
		t.Fatal(err)
	}
	d := &Driver{
		Width:     200,
		Height:    150,
		Source:    signal.Series{Offset: 4, Terms: []signal.Harmonic{{Amplitude: 6, Frequency: 1}}},
		Recorders: []scope.Recorder{chart},
		Sink:      s,
		Fonts:     sharedFonts(t),
	}
	if err := d.Run(context.Background(), 2); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if s.Last() == nil || len(s.Last().Commands()) == 0 {
		t.Fatal("no commands recorded")
	}
	if s.Commands() <= len(s.Last().Commands()) {
		t.Errorf("Commands() = %d, want the total over both frames", s.Commands())
	}
	if _, err := os.Stat(filepath.Join(dir, "frame-0001.png")); err != nil {
		t.Errorf("frame file missing: %v", err)
	}
}

func TestFFmpegArgs(t *testing.T) {
	args := FFmpegConfig{Output: "out.mp4", Width: 960, Height: 544}.Args()
	joined := strings.Join(args, " ")
	for _, want := range []string{
		"-f rawvideo", "-pix_fmt rgba", "-s 960x544", "-r 30", "-i -",
		"-c:v libx264", "-preset medium", "-crf 17",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args %q missing %q", joined, want)
		}
	}
	if args[len(args)-1] != "out.mp4" {
		t.Errorf("output is not the last argument: %v", args)
	}

	custom := FFmpegConfig{Output: "o.mkv", Width: 2, Height: 2, FrameRate: 60, CRF: 23, Preset: "fast", Codec: "libx265"}.Args()
	for _, want := range []string{"60", "23", "fast", "libx265"} {
		if !slices.Contains(custom, want) {
			t.Errorf("custom args %v missing %q", custom, want)
		}
	}
}

func TestFFmpegSinkMissingBinary(t *testing.T) {
	_, err := NewFFmpegSink(context.Background(), FFmpegConfig{
		Binary: "scope-no-such-encoder", Output: filepath.Join(t.TempDir(), "out.mp4"), Width: 4, Height: 4,
	})
	if !errors.Is(err, ErrEncoderNotFound) {
		t.Errorf("NewFFmpegSink() = %v, want ErrEncoderNotFound", err)
	}
}
