// Package config loads the headless runner's configuration from YAML.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-arena/internal/engine/characters"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Config is the runner configuration. Zero values are filled from Default.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	Redis    RedisConfig `yaml:"redis"`
	Run      RunConfig   `yaml:"run"`
	Batch    BatchConfig `yaml:"batch"`
}

// RedisConfig points at the profile store. An empty endpoint runs an
// in-process store that is discarded on exit.
type RedisConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// RunConfig drives a single simulated run.
type RunConfig struct {
	ProfileID string        `yaml:"profile_id"`
	Character string        `yaml:"character"`
	Seed      uint64        `yaml:"seed"`
	Tick      time.Duration `yaml:"tick"`
	// MaxDuration bounds simulated time; the run ends early on game over.
	MaxDuration time.Duration `yaml:"max_duration"`
	// MaxWaves stops the run after this many waves; zero is unlimited.
	MaxWaves int `yaml:"max_waves"`
}

// BatchConfig drives many independent runs.
type BatchConfig struct {
	Runs        int `yaml:"runs"`
	Parallelism int `yaml:"parallelism"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Run: RunConfig{
			Character:   characters.StarterID,
			Seed:        1,
			Tick:        16 * time.Millisecond,
			MaxDuration: 10 * time.Minute,
		},
		Batch: BatchConfig{
			Runs:        8,
			Parallelism: 4,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config file")
	}
	return cfg, nil
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	if c.Run.Character != "" {
		if _, ok := characters.Lookup(c.Run.Character); !ok {
			vb.Fieldf("Run.Character", "unknown character %q", c.Run.Character)
		}
	}
	if c.Run.Tick <= 0 {
		vb.Field("Run.Tick", "must be positive")
	}
	if c.Run.MaxDuration <= 0 {
		vb.Field("Run.MaxDuration", "must be positive")
	}
	if c.Run.MaxWaves < 0 {
		vb.Field("Run.MaxWaves", "must not be negative")
	}
	if c.Batch.Runs <= 0 {
		vb.Field("Batch.Runs", "must be positive")
	}
	if c.Batch.Parallelism <= 0 {
		vb.Field("Batch.Parallelism", "must be positive")
	}

	return vb.Build()
}

// ParseLevel maps a level name onto slog.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}
