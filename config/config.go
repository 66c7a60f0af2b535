// Package config reads crawl settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDungeon   = "CRAWL_DUNGEON"
	EnvSeed      = "CRAWL_SEED"
	EnvLogLevel  = "CRAWL_LOG_LEVEL"
	EnvLogFormat = "CRAWL_LOG_FORMAT"
	EnvLogFile   = "CRAWL_LOG_FILE"
	EnvPlain     = "CRAWL_PLAIN"
	EnvLang      = "CRAWL_LANG"
)

// Config holds the application configuration.
type Config struct {
	Dungeon   string // dungeon file or Lua directory; empty for the built-in dungeon
	Seed      int64  // 0 picks a seed from the clock
	LogLevel  string
	LogFormat string
	LogFile   string // empty discards logs
	Plain     bool   // line-oriented front end instead of the TUI
	Language  string // UI string catalogue
}

// Load loads the configuration from environment variables. Without
// arguments a .env file in the working directory is read if it exists;
// named files must exist.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("loading env files: %w", err)
	}

	cfg := &Config{
		Dungeon:   getEnv(EnvDungeon, ""),
		LogLevel:  getEnv(EnvLogLevel, "info"),
		LogFormat: getEnv(EnvLogFormat, "text"),
		LogFile:   getEnv(EnvLogFile, ""),
		Language:  getEnv(EnvLang, "en"),
	}

	seed, err := strconv.ParseInt(getEnv(EnvSeed, "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
	}
	cfg.Seed = seed

	plain, err := strconv.ParseBool(getEnv(EnvPlain, "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPlain, err)
	}
	cfg.Plain = plain

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
