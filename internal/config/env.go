package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Environment keys read by ApplyEnv.
const (
	EnvLogLevel  = "ARENA_LOG_LEVEL"
	EnvRedis     = "ARENA_REDIS_ENDPOINT"
	EnvProfileID = "ARENA_PROFILE_ID"
	EnvCharacter = "ARENA_CHARACTER"
	EnvSeed      = "ARENA_SEED"
)

// ApplyEnv overlays environment variables on c. Values from envFile, when
// given, are used only for keys the process environment does not set.
func (c *Config) ApplyEnv(envFile string) error {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.NotFoundf("env file %s not found", envFile)
			}
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse env file")
		}
		fileVars = vars
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvRedis); ok {
		c.Redis.Endpoint = v
	}
	if v, ok := lookup(EnvProfileID); ok {
		c.Run.ProfileID = v
	}
	if v, ok := lookup(EnvCharacter); ok {
		c.Run.Character = v
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.InvalidArgumentf("%s must be an unsigned integer, got %q", EnvSeed, v)
		}
		c.Run.Seed = seed
	}

	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "invalid environment")
	}
	return nil
}
