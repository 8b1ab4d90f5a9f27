package animation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/scope"
)

// ErrEncoderNotFound is returned when the ffmpeg binary cannot be located.
var ErrEncoderNotFound = errors.New("animation: ffmpeg not found")

// FFmpegConfig describes the encoder invocation.
type FFmpegConfig struct {
	Binary    string // default "ffmpeg"
	Output    string
	Width     int
	Height    int
	FrameRate float64 // default scope.DefaultFrameRate
	Codec     string  // default "libx264"
	CRF       int     // default 17
	Preset    string  // default "medium"
}

func (c FFmpegConfig) withDefaults() FFmpegConfig {
	if c.Binary == "" {
		c.Binary = "ffmpeg"
	}
	if c.FrameRate <= 0 {
		c.FrameRate = scope.DefaultFrameRate
	}
	if c.Codec == "" {
		c.Codec = "libx264"
	}
	if c.CRF == 0 {
		c.CRF = 17
	}
	if c.Preset == "" {
		c.Preset = "medium"
	}
	return c
}

// Args returns the ffmpeg arguments: raw RGBA frames on stdin, encoded to
// Output with yuv420p pixel format.
func (c FFmpegConfig) Args() []string {
	c = c.withDefaults()
	return []string{
		"-y", "-loglevel", "error",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", c.Width, c.Height),
		"-r", strconv.FormatFloat(c.FrameRate, 'f', -1, 64),
		"-i", "-",
		"-an",
		"-c:v", c.Codec,
		"-preset", c.Preset,
		"-crf", strconv.Itoa(c.CRF),
		"-pix_fmt", "yuv420p",
		c.Output,
	}
}

// FFmpegSink encodes frames by piping them into an ffmpeg child process.
type FFmpegSink struct {
	raw    *RawSink
	cmd    *exec.Cmd
	stderr bytes.Buffer
	closed bool
}

var _ Sink = (*FFmpegSink)(nil)

// NewFFmpegSink starts ffmpeg. The process is killed if ctx is canceled
// before Close.
func NewFFmpegSink(ctx context.Context, cfg FFmpegConfig) (*FFmpegSink, error) {
	cfg = cfg.withDefaults()
	if cfg.Output == "" {
		return nil, errors.New("animation: ffmpeg output path is empty")
	}
	bin, err := exec.LookPath(cfg.Binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoderNotFound, err)
	}

	s := &FFmpegSink{}
	s.cmd = exec.CommandContext(ctx, bin, cfg.Args()...)
	s.cmd.Stderr = &s.stderr
	stdin, err := s.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("animation: ffmpeg stdin: %w", err)
	}
	raw, err := NewRawSink(stdin, cfg.Width, cfg.Height)
	if err != nil {
		_ = stdin.Close()
		return nil, err
	}
	s.raw = raw
	if err := s.cmd.Start(); err != nil {
		return nil, fmt.Errorf("animation: start ffmpeg: %w", err)
	}
	scope.Logger().Info("ffmpeg started", "output", cfg.Output,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), "crf", cfg.CRF, "preset", cfg.Preset)
	return s, nil
}

// Begin implements Sink.
func (s *FFmpegSink) Begin(n int, bg gg.RGBA) (Canvas, error) {
	return s.raw.Begin(n, bg)
}

// Commit implements Sink.
func (s *FFmpegSink) Commit(n int) error {
	if err := s.raw.Commit(n); err != nil {
		return s.withStderr(err)
	}
	return nil
}

// Close implements Sink. It closes ffmpeg's stdin and waits for the
// encoder to finish.
func (s *FFmpegSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.raw.Close()
	if werr := s.cmd.Wait(); werr != nil {
		err = errors.Join(err, s.withStderr(fmt.Errorf("animation: ffmpeg: %w", werr)))
	}
	return err
}

func (s *FFmpegSink) withStderr(err error) error {
	msg := strings.TrimSpace(s.stderr.String())
	if msg == "" {
		return err
	}
	if i := strings.LastIndexByte(msg, '\n'); i >= 0 {
		msg = msg[i+1:]
	}
	return fmt.Errorf("%w (%s)", err, msg)
}

