// Package config holds settings shared by the oatables tools. Values come
// from the environment with the OATABLES prefix, optionally seeded from a
// .env file in the working directory.
package config

import (
	"path"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// DataDir is the root for all local snapshot data, defaults to an xdg
	// data home subdirectory.
	DataDir string `envconfig:"DATA_DIR"`
	// DatabaseURL is the postgres connection string for loading.
	DatabaseURL string `envconfig:"DATABASE_URL" default:"postgres://localhost:5432/openalex"`
	// MaxRetries is a generic retry count for HTTP fetches.
	MaxRetries int `envconfig:"MAX_RETRIES" default:"3"`
	// Timeout is a generic operation timeout.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"1h"`
	// RcloneTransfers is passed to rclone for bucket mirroring.
	RcloneTransfers int `envconfig:"RCLONE_TRANSFERS" default:"8"`
	// RcloneCheckers is passed to rclone for bucket mirroring.
	RcloneCheckers int `envconfig:"RCLONE_CHECKERS" default:"16"`
}

// SnapshotDir is the local mirror root, containing the data/<kind>/ layout.
func (c *Config) SnapshotDir() string {
	return path.Join(c.DataDir, "openalex")
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("oatables", &c); err != nil {
		return nil, err
	}
	if c.DataDir == "" {
		c.DataDir = path.Join(xdg.DataHome, "oatables")
	}
	return &c, nil
}
