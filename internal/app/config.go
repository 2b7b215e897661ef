package app

import (
	"errors"
	"fmt"
)

// DefaultTurns is used when neither the command line nor the scenario sets
// the number of turns.
const DefaultTurns = 10

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MapPath string // scenario file or directory

	// Overrides for the scenario's simulation block; nil means unset.
	Turns *int
	Seed  *int64

	LogFormat string
	LogLevel  string
	Output    string // "text" or "json"
	ShowMap   bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.MapPath == "" {
		return nil, errors.New("MapPath is a required configuration field and cannot be empty")
	}
	if cfg.Turns != nil && *cfg.Turns < 0 {
		return nil, fmt.Errorf("turns must not be negative, got %d", *cfg.Turns)
	}
	switch cfg.Output {
	case "":
		cfg.Output = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid output %q: must be 'text' or 'json'", cfg.Output)
	}
	return &cfg, nil
}
