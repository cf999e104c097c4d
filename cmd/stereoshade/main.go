// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Command stereoshade renders a scene description into
// one PNG image per frame and view slot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gviegas/stereo/engine"
	"github.com/gviegas/stereo/scene"
)

type app struct {
	log *zap.Logger
}

// run parses args (without the program name) and renders
// the requested frames.
func (a *app) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stereoshade", flag.ContinueOnError)
	scenePath := fs.String("scene", "", "scene description (YAML)")
	out := fs.String("out", ".", "output directory")
	frames := fs.Int("frames", 1, "number of frames to render")
	dt := fs.Float64("dt", 0, "clock step in seconds (0 keeps the scene's step)")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if *verbose {
		a.log, err = zap.NewDevelopment()
	} else {
		a.log, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer a.log.Sync()

	if *scenePath == "" {
		fs.Usage()
		return fmt.Errorf("missing -scene")
	}
	if *frames < 1 {
		return fmt.Errorf("invalid -frames: %d", *frames)
	}

	f, err := scene.ReadFile(*scenePath)
	if err != nil {
		return err
	}
	if *dt != 0 {
		f.Step = float32(*dt)
	}
	sc, err := f.Build(filepath.Dir(*scenePath))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w, h := sc.Size()
	r, err := engine.NewOffscreen(w, h, sc.Layers())
	if err != nil {
		return err
	}
	r.SetLogger(a.log)
	a.log.Info("scene loaded",
		zap.String("scene", *scenePath),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("layers", sc.Layers()),
		zap.Int("frames", *frames))

	pb := progressbar.Default(int64(*frames))
	defer pb.Close()

	var total engine.Stats
	for k := range *frames {
		frame, err := sc.Frame(ctx)
		if err != nil {
			return err
		}
		s, err := r.Draw(ctx, frame)
		if err != nil {
			return fmt.Errorf("failed to render frame %d: %w", k, err)
		}
		total.Fragments += s.Fragments
		total.Written += s.Written
		for slot := range r.Target().Layers() {
			name := filepath.Join(*out, fmt.Sprintf("frame%d_slot%d.png", k, slot))
			if err := a.writePNG(name, r, slot); err != nil {
				return err
			}
		}
		pb.Add(1)
	}

	a.log.Info("done",
		zap.String("out", *out),
		zap.Int("fragments", total.Fragments),
		zap.Int("written", total.Written))
	return nil
}

func (a *app) writePNG(name string, r *engine.Offscreen, slot int) error {
	fd, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := r.Target().WritePNG(fd, slot); err != nil {
		fd.Close()
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := fd.Close(); err != nil {
		return err
	}
	a.log.Debug("wrote image", zap.String("file", name), zap.Int("slot", slot))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := app{log: zap.NewNop()}
	if err := a.run(ctx, os.Args[1:]); err != nil {
		a.log.Error("stereoshade failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "stereoshade: %v\n", err)
		os.Exit(1)
	}
}
