// Package config provides configuration for the console and self-play tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// StartFEN is the setup every new game starts from.
	StartFEN string

	Console  ConsoleConfig
	SelfPlay SelfPlayConfig
	Output   OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		StartFEN:   engine.InitialFEN,
		Console:    *NewConsoleConfig(),
		SelfPlay:   *NewSelfPlayConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer reports and boards are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if _, err := engine.ParseFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	if err := c.SelfPlay.Validate(); err != nil {
		return err
	}
	return c.Console.Validate()
}

// Logf writes to the log stream when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
