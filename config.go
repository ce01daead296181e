// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glcompat

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the file form of the Context options.
//
//	# glcompat.toml
//	texture_units   = 4
//	max_buffers     = 1024
//	max_buffer_size = 67108864
//	log_level       = "warn"
type Config struct {
	// TextureUnits is the number of fixed-function texture units.
	TextureUnits int `toml:"texture_units"`

	// MaxBuffers caps live buffer objects. Zero means no cap.
	MaxBuffers int `toml:"max_buffers"`

	// MaxBufferSize caps the storage of one buffer in bytes. Zero means the
	// default WebGPU MaxBufferSize.
	MaxBufferSize uint64 `toml:"max_buffer_size"`

	// LogLevel is "off" or a slog level name ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration NewContext uses without options.
func DefaultConfig() Config {
	return Config{
		TextureUnits: DefaultTextureUnits,
		MaxBuffers:   0,
		LogLevel:     "off",
	}
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("glcompat: read config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// DecodeConfig reads a TOML configuration from r.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("glcompat: decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("glcompat: encode config: %w", err)
	}
	return nil
}

// Validate reports values NewContext would otherwise have to clamp.
func (c Config) Validate() error {
	if c.TextureUnits < 1 || c.TextureUnits > 32 {
		return fmt.Errorf("glcompat: texture_units %d out of range [1, 32]", c.TextureUnits)
	}
	if c.MaxBuffers < 0 {
		return fmt.Errorf("glcompat: max_buffers %d is negative", c.MaxBuffers)
	}
	if _, _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// level parses LogLevel. The boolean is false when logging is off.
func (c Config) level() (slog.Level, bool, error) {
	name := strings.TrimSpace(c.LogLevel)
	if name == "" || strings.EqualFold(name, "off") {
		return 0, false, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, false, fmt.Errorf("glcompat: log_level %q: %w", c.LogLevel, err)
	}
	return lvl, true, nil
}

// Logger returns a text logger writing to w at LogLevel, or nil when
// logging is off.
func (c Config) Logger(w io.Writer) *slog.Logger {
	lvl, on, err := c.level()
	if err != nil || !on {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Options converts c into Context options. A logger is included only when
// w is non-nil and logging is on.
func (c Config) Options(w io.Writer) []Option {
	opts := []Option{
		WithTextureUnits(c.TextureUnits),
		WithMaxBuffers(c.MaxBuffers),
		WithMaxBufferSize(c.MaxBufferSize),
	}
	if w != nil {
		if l := c.Logger(w); l != nil {
			opts = append(opts, WithLogger(l))
		}
	}
	return opts
}
