package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvTheme   = "FOLIO_THEME"
	EnvSeed    = "FOLIO_SEED"
	EnvFPS     = "FOLIO_FPS"
	EnvProfile = "FOLIO_PROFILE"
	EnvResume  = "FOLIO_RESUME"
	EnvPort    = "PORT"
	EnvDebug   = "FOLIO_DEBUG"
)

// LoadEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		c.Theme = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvSeed, v)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvFPS); ok && v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvFPS, v)
		}
		c.FPS = fps
	}
	if v, ok := os.LookupEnv(EnvProfile); ok && v != "" {
		c.Profile = v
	}
	if v, ok := os.LookupEnv(EnvResume); ok && v != "" {
		c.Resume = v
	}
	if v, ok := os.LookupEnv(EnvPort); ok && v != "" {
		c.Addr = ":" + v
	}
	return nil
}

// Debug reports whether debug logging was requested.
func Debug() bool {
	v, _ := strconv.ParseBool(os.Getenv(EnvDebug))
	return v
}
