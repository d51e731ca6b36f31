package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-arena/internal/config"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) write(body string) string {
	path := filepath.Join(s.dir, "arena.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultsAreValid() {
	cfg, err := config.Load("")
	s.Require().NoError(err)
	s.Assert().NoError(cfg.Validate())
	s.Assert().Equal(16*time.Millisecond, cfg.Run.Tick)
	s.Assert().Empty(cfg.Redis.Endpoint)
}

func (s *ConfigTestSuite) TestLoadOverridesDefaults() {
	path := s.write(`
log_level: debug
redis:
  endpoint: localhost:6379
run:
  character: gambler
  seed: 99
  tick: 20ms
  max_waves: 3
batch:
  runs: 16
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Assert().Equal("debug", cfg.LogLevel)
	s.Assert().Equal("localhost:6379", cfg.Redis.Endpoint)
	s.Assert().Equal("gambler", cfg.Run.Character)
	s.Assert().Equal(uint64(99), cfg.Run.Seed)
	s.Assert().Equal(20*time.Millisecond, cfg.Run.Tick)
	s.Assert().Equal(3, cfg.Run.MaxWaves)
	s.Assert().Equal(10*time.Minute, cfg.Run.MaxDuration, "unset keys keep defaults")
	s.Assert().Equal(16, cfg.Batch.Runs)
	s.Assert().Equal(4, cfg.Batch.Parallelism)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	s.Run("missing file", func() {
		_, err := config.Load(filepath.Join(s.dir, "nope.yaml"))
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("malformed yaml", func() {
		_, err := config.Load(s.write("run: [unterminated"))
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("invalid values", func() {
		_, err := config.Load(s.write("log_level: loud\nrun:\n  character: wizard\n  tick: -1s\n"))
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
		s.Assert().Contains(err.Error(), "LogLevel")
		s.Assert().Contains(err.Error(), "Run.Character")
		s.Assert().Contains(err.Error(), "Run.Tick")
	})
}

func (s *ConfigTestSuite) TestParseLevel() {
	level, err := config.ParseLevel("WARN")
	s.Require().NoError(err)
	s.Assert().Equal(slog.LevelWarn, level)

	_, err = config.ParseLevel("chatty")
	s.Assert().Error(err)
}

func (s *ConfigTestSuite) TestApplyEnv() {
	s.Run("process environment", func() {
		s.T().Setenv(config.EnvRedis, "redis:6379")
		s.T().Setenv(config.EnvSeed, "77")

		cfg := config.Default()
		s.Require().NoError(cfg.ApplyEnv(""))
		s.Assert().Equal("redis:6379", cfg.Redis.Endpoint)
		s.Assert().Equal(uint64(77), cfg.Run.Seed)
	})

	s.Run("env file yields to the process", func() {
		path := filepath.Join(s.dir, ".env")
		s.Require().NoError(os.WriteFile(path, []byte("ARENA_CHARACTER=runner\nARENA_LOG_LEVEL=debug\n"), 0o600))
		s.T().Setenv(config.EnvLogLevel, "warn")

		cfg := config.Default()
		s.Require().NoError(cfg.ApplyEnv(path))
		s.Assert().Equal("runner", cfg.Run.Character)
		s.Assert().Equal("warn", cfg.LogLevel)
	})

	s.Run("missing env file", func() {
		err := config.Default().ApplyEnv(filepath.Join(s.dir, "missing.env"))
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("bad seed", func() {
		s.T().Setenv(config.EnvSeed, "-3")
		err := config.Default().ApplyEnv("")
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown character", func() {
		s.T().Setenv(config.EnvCharacter, "wizard")
		err := config.Default().ApplyEnv("")
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}
