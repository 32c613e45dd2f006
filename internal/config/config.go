// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package config loads bulk-evaluation tuning from ELEM_* environment
// variables.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-elementary/internal/logging"
)

// Prefix is prepended to every variable name, e.g. ELEM_WORKERS.
const Prefix = "ELEM"

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all tuning knobs.
type Config struct {
	// NoParallel forces every bulk call onto the calling goroutine.
	NoParallel bool `split_words:"true" default:"false"`

	// Workers is the pool size; 0 means GOMAXPROCS.
	Workers int `split_words:"true" default:"0"`

	// ParallelMin is the element count below which bulk calls stay
	// sequential.
	ParallelMin int `split_words:"true" default:"4096"`

	LogLevel string `split_words:"true" default:"info"`
	LogDev   bool   `split_words:"true" default:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		ParallelMin: 4096,
		LogLevel:    "info",
	}
}

// Validate rejects negative counts and unknown log levels.
func (c *Config) Validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: %s_WORKERS = %d", ErrInvalid, Prefix, c.Workers)
	case c.ParallelMin < 0:
		return fmt.Errorf("%w: %s_PARALLEL_MIN = %d", ErrInvalid, Prefix, c.ParallelMin)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s_LOG_LEVEL: %v", ErrInvalid, Prefix, err)
	}
	return nil
}

// Logging returns the logger configuration described by c.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.Development = c.LogDev
	return cfg
}
