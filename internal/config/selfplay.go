package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SelfPlayConfig holds settings for the random-play verifier.
type SelfPlayConfig struct {
	// Games is the number of games to play
	Games int

	// Workers is the number of goroutines; 0 means one per CPU
	Workers int

	// MaxPlies ends a game that has not finished after this many half-moves
	MaxPlies int

	// Seed makes runs reproducible; game i uses Seed+i
	Seed int64

	// StopOnViolation stops the pool at the first legality violation
	StopOnViolation bool
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:           100,
		MaxPlies:        300,
		Seed:            1,
		StopOnViolation: true,
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 1 {
		return fmt.Errorf("games (%d) must be at least 1: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers (%d) is negative: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.MaxPlies < 1 {
		return fmt.Errorf("max plies (%d) must be at least 1: %w", s.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
