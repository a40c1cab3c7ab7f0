// SPDX-License-Identifier: MIT

// Package config loads qspin runtime settings from the environment.
//
// An optional .env file in the working directory is read first; variables
// already present in the environment win over it.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig indicates a setting with a value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Environment variables.
const (
	EnvLogLevel  = "QSPIN_LOG_LEVEL"
	EnvLogPretty = "QSPIN_LOG_PRETTY"
	EnvEpsilon   = "QSPIN_EPSILON"
	EnvSnap      = "QSPIN_SNAP"
	EnvDemos     = "QSPIN_DEMOS"
)

// Demo names accepted in QSPIN_DEMOS and -demo.
const (
	DemoAlgebra      = "algebra"
	DemoSpin         = "spin"
	DemoPolarisation = "polarisation"
	DemoDice         = "dice"
)

// AllDemos lists every demo in run order.
var AllDemos = []string{DemoAlgebra, DemoSpin, DemoPolarisation, DemoDice}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config holds application configuration.
type Config struct {
	LogLevel  string
	LogPretty bool
	// Epsilon is the comparison tolerance of experiments.
	Epsilon float64
	// Snap forces components with magnitude ≤ Snap to zero before printing.
	Snap  float64
	Demos []string
}

// Load reads configuration from .env (if present) and the environment.
// A missing .env is ignored; an unreadable or malformed one is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	eps, err := getEnvAsFloat(EnvEpsilon, 1e-9)
	if err != nil {
		return nil, err
	}
	snap, err := getEnvAsFloat(EnvSnap, 1e-12)
	if err != nil {
		return nil, err
	}
	pretty, err := getEnvAsBool(EnvLogPretty, true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, "info")),
		LogPretty: pretty,
		Epsilon:   eps,
		Snap:      snap,
		Demos:     ParseDemos(getEnv(EnvDemos, strings.Join(AllDemos, ","))),
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseDemos splits a comma-separated list, trimming blanks and dropping
// empty entries. "all" expands to AllDemos.
func ParseDemos(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "":
		case "all":
			out = append(out, AllDemos...)
		default:
			out = append(out, part)
		}
	}

	return out
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("%s=%q: %w", EnvLogLevel, c.LogLevel, ErrInvalidConfig)
	}
	if !(c.Epsilon >= 0) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%s=%g: %w", EnvEpsilon, c.Epsilon, ErrInvalidConfig)
	}
	if !(c.Snap >= 0) || math.IsInf(c.Snap, 0) {
		return fmt.Errorf("%s=%g: %w", EnvSnap, c.Snap, ErrInvalidConfig)
	}
	if len(c.Demos) == 0 {
		return fmt.Errorf("%s is empty: %w", EnvDemos, ErrInvalidConfig)
	}
	for _, d := range c.Demos {
		if !isDemo(d) {
			return fmt.Errorf("%s: unknown demo %q: %w", EnvDemos, d, ErrInvalidConfig)
		}
	}

	return nil
}

func isDemo(name string) bool {
	for _, d := range AllDemos {
		if d == name {
			return true
		}
	}

	return false
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidConfig)
	}
	return f, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", key, value, ErrInvalidConfig)
	}
	return b, nil
}
