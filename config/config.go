// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the fiber tool
// and of the renderers it makes.
package config

import (
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/fiber/fiber"
	"cogentcore.org/fiber/logx"
)

// Config is the configuration of the fiber tool. It is read from TOML
// files, which can include other files that they override.
type Config struct {

	// Includes are other config files that this file is applied on top of,
	// relative to the directory of this file.
	Includes []string `toml:"includes"`

	// Verbose enables verbose logging.
	Verbose bool `toml:"verbose"`

	// VeryVerbose enables debug logging of every structural operation.
	VeryVerbose bool `toml:"very_verbose"`

	// Quiet only logs errors.
	Quiet bool `toml:"quiet"`

	// PrimitiveType is the declarative type name that adopts
	// existing objects instead of constructing them.
	PrimitiveType string `toml:"primitive_type"`

	// AutoAttach are the rules that give attachment slots to types
	// by the suffix of their names.
	AutoAttach []fiber.AttachRule `toml:"auto_attach"`

	// NoAutoAttach turns off the default auto attach rules.
	NoAutoAttach bool `toml:"no_auto_attach"`

	// DebounceMS is the number of milliseconds that the watch command waits
	// for a file to stop changing before reloading it.
	DebounceMS int `toml:"debounce_ms"`

	// Format is the default output format of the build command.
	Format string `toml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		PrimitiveType: fiber.DefaultPrimitiveType,
		AutoAttach:    slices.Clone(fiber.DefaultAutoAttach),
		DebounceMS:    100,
		Format:        "text",
	}
}

// Level returns the logging level for the verbosity settings.
func (c *Config) Level() slog.Level {
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// Debounce returns the watch debounce delay.
func (c *Config) Debounce() time.Duration {
	return time.Duration(max(c.DebounceMS, 0)) * time.Millisecond
}

// Apply configures the given renderer.
func (c *Config) Apply(r *fiber.Renderer) {
	if c.PrimitiveType != "" {
		r.PrimitiveType = c.PrimitiveType
	}
	switch {
	case c.NoAutoAttach:
		r.AutoAttach = nil
	case len(c.AutoAttach) > 0:
		r.AutoAttach = slices.Clone(c.AutoAttach)
	}
}
