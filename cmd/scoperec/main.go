// Command scoperec renders an animated signal scope scene to video or
// image frames.
//
// Without -config the classic scene is rendered: a strip chart and a polar
// trace of y = 4 + 6·sin(t), encoded to out.mp4 with ffmpeg.
//
//	scoperec -frames 300 -out scope.mp4
//	scoperec -config scene.yaml -output png -out frames/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/recording/backends/raster" // built-in raster backend
	"github.com/gogpu/gg/text"

	"github.com/gogpu/scope"
	"github.com/gogpu/scope/animation"
	"github.com/gogpu/scope/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene YAML file (default: built-in scene)")
		frames     = flag.Int("frames", -1, "number of frames (overrides config)")
		out        = flag.String("out", "", "output path (overrides config)")
		output     = flag.String("output", "", "output kind: png, ffmpeg, recording or raw (overrides config)")
		logLevel   = flag.String("log-level", "", "log level: error, warn, info or debug (overrides config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *frames >= 0 {
		cfg.Frames = *frames
	}
	if *out != "" {
		cfg.Output.Path = *out
	}
	if *output != "" {
		cfg.Output.Kind = *output
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := config.ParseLevel(cfg.Logging.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scope.SetLogger(logger)
	gg.SetLogger(logger)

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("render failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(ctx context.Context, cfg config.Config) (err error) {
	if cfg.Shaper == config.ShaperGoText {
		text.SetShaper(text.NewGoTextShaper())
		defer text.SetShaper(nil)
	}

	fonts, err := scope.NewFonts()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, fonts.Close()) }()

	tag, _ := cfg.Language()
	recs, err := cfg.BuildRecorders(scope.WithFonts(fonts), scope.WithLocale(tag),
		scope.WithFrameRate(cfg.Canvas.FrameRate))
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, config.CloseAll(recs)) }()

	bg, _ := config.ParseColor(cfg.Canvas.Background)
	d := &animation.Driver{
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		Source:      cfg.Signal.Series(),
		StepDegrees: cfg.Signal.StepDegrees,
		Recorders:   recs,
		Background:  bg,
		Caption:     cfg.Signal.Caption,
		Fonts:       fonts,
	}
	if cfg.Logo != "" {
		logo, err := gg.LoadImage(cfg.Logo)
		if err != nil {
			return fmt.Errorf("load logo: %w", err)
		}
		d.Logo = logo
	}

	sink, err := newSink(ctx, cfg)
	if err != nil {
		return err
	}
	d.Sink = sink

	runErr := d.Run(ctx, cfg.Frames)
	return errors.Join(runErr, sink.Close())
}

func newSink(ctx context.Context, cfg config.Config) (animation.Sink, error) {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	switch cfg.Output.Kind {
	case config.OutputPNG:
		return animation.NewPNGSink(cfg.Output.Path, w, h)
	case config.OutputRecording:
		backend := cfg.Output.Backend
		if backend == "" {
			backend = "raster"
		}
		return animation.NewRecordingSink(backend, cfg.Output.Path, w, h)
	case config.OutputRaw:
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return nil, err
		}
		return animation.NewRawSink(f, w, h)
	case config.OutputFFmpeg:
		return animation.NewFFmpegSink(ctx, animation.FFmpegConfig{
			Output:    cfg.Output.Path,
			Width:     w,
			Height:    h,
			FrameRate: cfg.Canvas.FrameRate,
			CRF:       cfg.Output.CRF,
			Preset:    cfg.Output.Preset,
		})
	}
	return nil, fmt.Errorf("unknown output kind %q", cfg.Output.Kind)
}
