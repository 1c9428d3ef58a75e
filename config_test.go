package hierarchy

import (
	"errors"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0 (auto)", cfg.Workers)
	}
	if cfg.MinLevelSize != 1024 {
		t.Errorf("MinLevelSize = %d, want 1024", cfg.MinLevelSize)
	}
	if err := validateConfig(&cfg); err != nil {
		t.Errorf("DefaultConfig() is invalid: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative Workers", func(c *Config) { c.Workers = -2 }},
		{"negative MinLevelSize", func(c *Config) { c.MinLevelSize = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := validateConfig(&cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := prepareConfig(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{Workers: runtime.NumCPU(), MinLevelSize: 1024}
	if cfg != want {
		t.Errorf("prepareConfig(Config{}) = %+v, want %+v", cfg, want)
	}
	cfg, err = prepareConfig(DefaultConfig())
	if err != nil || cfg != want {
		t.Errorf("prepareConfig(DefaultConfig()) = %+v, %v; want %+v", cfg, err, want)
	}
}
