package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ColourMode says when the console may use ANSI colours.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // colour when stdout is a terminal
	ColourAlways                   // always colour
	ColourNever                    // plain text
)

// String returns the flag spelling of the mode.
func (m ColourMode) String() string {
	switch m {
	case ColourAlways:
		return "always"
	case ColourNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColourMode parses "auto", "always" or "never".
func ParseColourMode(s string) (ColourMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColourAuto, nil
	case "always", "yes", "on":
		return ColourAlways, nil
	case "never", "no", "off":
		return ColourNever, nil
	}
	return ColourAuto, fmt.Errorf("colour mode %q: %w", s, errors.ErrInvalidConfig)
}

// ConsoleConfig holds settings for the interactive console.
type ConsoleConfig struct {
	// Colour controls ANSI colouring of the board and messages
	Colour ColourMode

	// HistoryFile keeps readline history between sessions; empty disables it
	HistoryFile string

	// Prompt is shown before each command
	Prompt string

	// ShowBoard prints the board after every accepted move
	ShowBoard bool

	// PromotionDefault is used when the promotion prompt gets an empty line
	PromotionDefault byte
}

// NewConsoleConfig creates a ConsoleConfig with default values.
func NewConsoleConfig() *ConsoleConfig {
	return &ConsoleConfig{
		Colour:           ColourAuto,
		Prompt:           "> ",
		ShowBoard:        true,
		PromotionDefault: 'q',
	}
}

// Validate checks that the console configuration is valid.
func (c *ConsoleConfig) Validate() error {
	switch c.PromotionDefault {
	case 'q', 'r', 'b', 'k', 'n':
		return nil
	}
	return fmt.Errorf("promotion default %q: %w", c.PromotionDefault, errors.ErrInvalidConfig)
}
