// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package engine implements multi-view rendering: the
// instance/view data model, the instance demultiplexer, the
// transform stage and a renderer that shades every view of
// a frame in parallel.
package engine

import (
	"errors"
	"runtime"
)

const (
	// The default maximum number of views per frame.
	MaxView = 6

	// The default maximum number of instances per frame.
	MaxInstance = 65536

	dflClearDepth = 1
)

// Config is used to configure the engine.
type Config struct {
	// The maximum number of views per frame.
	//
	// Default is MaxView.
	MaxView int

	// The maximum number of instances per frame.
	//
	// Default is MaxInstance.
	MaxInstance int

	// The maximum number of views that are rendered
	// concurrently.
	//
	// Default is runtime.GOMAXPROCS(0).
	Workers int

	// The depth to which target layers are cleared
	// before a frame is rendered.
	//
	// Default is 1.
	ClearDepth float32
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxView:     MaxView,
		MaxInstance: MaxInstance,
		Workers:     runtime.GOMAXPROCS(0),
		ClearDepth:  dflClearDepth,
	}
}

var cfg Config

// Configure replaces the engine's configuration
// with config.
// It fails if config has out of range values, in
// which case the current configuration is kept.
func Configure(config *Config) error {
	switch {
	case config.MaxView < 1:
		return errors.New("engine: Config.MaxView must be positive")
	case config.MaxInstance < 1:
		return errors.New("engine: Config.MaxInstance must be positive")
	case config.Workers < 1:
		return errors.New("engine: Config.Workers must be positive")
	case !(config.ClearDepth >= 0 && config.ClearDepth <= 1):
		return errors.New("engine: Config.ClearDepth not in [0.0, 1.0]")
	}
	cfg = *config
	return nil
}

// Current returns the engine's configuration.
func Current() Config { return cfg }

func init() {
	config := DefaultConfig()
	if err := Configure(&config); err != nil {
		panic(err)
	}
}
