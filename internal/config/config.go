// Package config loads the loci configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultLogLevel   = "info"
	DefaultDifficulty = "medium"
)

// Config holds the resolved application configuration.
type Config struct {
	DBPath              string
	XPPath              string
	LogLevel            string
	LogFile             string
	ChallengeDifficulty string
}

type fileConfig struct {
	Storage struct {
		Path string `toml:"path"`
	} `toml:"storage"`
	Logging struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"logging"`
	Challenge struct {
		Difficulty string `toml:"difficulty"`
	} `toml:"challenge"`
}

// Load resolves configuration from the TOML file at path (default
// ~/.loci/config.toml), then the environment, atop built-in defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	home, _ := os.UserHomeDir()
	baseDir := filepath.Join(home, ".loci")

	cfg := &Config{
		DBPath:              filepath.Join(baseDir, "loci.db"),
		XPPath:              filepath.Join(baseDir, "xp.json"),
		LogLevel:            DefaultLogLevel,
		ChallengeDifficulty: DefaultDifficulty,
	}

	if path == "" {
		path = filepath.Join(baseDir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if fc.Storage.Path != "" {
		cfg.DBPath = fc.Storage.Path
	}
	if fc.Logging.Level != "" {
		cfg.LogLevel = fc.Logging.Level
	}
	if fc.Logging.File != "" {
		cfg.LogFile = fc.Logging.File
	}
	if fc.Challenge.Difficulty != "" {
		cfg.ChallengeDifficulty = fc.Challenge.Difficulty
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if env := os.Getenv("LOCI_DB"); env != "" {
		cfg.DBPath = env
	}
	if env := os.Getenv("LOCI_LOG_LEVEL"); env != "" {
		cfg.LogLevel = env
	}
}
