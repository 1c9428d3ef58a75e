package hierarchy

import (
	"fmt"
	"runtime"
)

// Config controls the concurrent forms of the reduction engine.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Workers is the number of goroutines working on one level of the
	// tree at a time. 0 means use runtime.NumCPU(). Must be >= 0.
	// Default: 0 (auto).
	Workers int

	// MinLevelSize is the smallest level worth splitting across workers.
	// Levels with fewer nodes run on the calling goroutine. Must be >= 1
	// after defaulting. Default: 1024.
	MinLevelSize int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		MinLevelSize: 1024,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", ErrInvalidConfig, cfg.Workers)
	}
	if cfg.MinLevelSize < 0 {
		return fmt.Errorf("%w: MinLevelSize must be >= 1 (0 means default), got %d", ErrInvalidConfig, cfg.MinLevelSize)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.MinLevelSize == 0 {
		cfg.MinLevelSize = 1024
	}
}
