// Package config provides configuration for the fen-analyze tool.
package config

import (
	"io"
	"os"
	"runtime"
)

// Config holds the program configuration.
type Config struct {
	// Input
	InputFile string // empty means stdin

	// Output
	OutputWriter io.Writer
	JSONFormat   bool
	Verbosity    int // 0=errors only, 1=summary, 2=running commentary

	// Processing
	Workers    int
	CrossCheck bool // verify legal move lists against a second generator
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputWriter: os.Stdout,
		Verbosity:    1,
		Workers:      runtime.NumCPU(),
	}
}
