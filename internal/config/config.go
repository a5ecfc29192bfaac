// Package config reads runtime configuration from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client.
type Config struct {
	Home       string // config directory, default ~/.parley
	Server     string // channel server base URL
	Passphrase string // identity passphrase; usually supplied via flag
}

// Load reads configuration from environment variables, after loading a .env
// file if one is present (for development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	home := os.Getenv("PARLEY_HOME")
	if home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		home = filepath.Join(dir, ".parley")
	}

	return &Config{
		Home:       home,
		Server:     os.Getenv("PARLEY_SERVER"),
		Passphrase: os.Getenv("PARLEY_PASSPHRASE"),
	}, nil
}
