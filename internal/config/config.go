// Package config loads the voquab configuration file. Engine weights and
// tables are fixed; only session and package shaping is configurable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gongduet/voquab/internal/session"
)

// Defaults for unset fields.
const (
	DefaultSessionSize = 15
	DefaultPackageSize = 40
)

// Config shapes review sessions and package composition.
type Config struct {
	// SessionSize is the target word count for a review session.
	SessionSize int `yaml:"session_size"`
	// PackageSize is the target word count for a composed package.
	PackageSize int `yaml:"package_size"`
	// RequeuePolicy selects how "don't know" words recycle:
	// "immediate" or "delayed".
	RequeuePolicy session.RequeuePolicy `yaml:"requeue_policy"`
	// NoShuffle disables the randomized presentation order.
	NoShuffle bool `yaml:"no_shuffle"`
	// ChapterFocus boosts words from FocusChapterID during scoring.
	ChapterFocus   bool   `yaml:"chapter_focus"`
	FocusChapterID string `yaml:"focus_chapter_id"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SessionSize:   DefaultSessionSize,
		PackageSize:   DefaultPackageSize,
		RequeuePolicy: session.RequeueImmediate,
	}
}

// Load reads the config at path, filling unset fields with defaults.
// A missing file is not an error: defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.SessionSize <= 0 {
		cfg.SessionSize = DefaultSessionSize
	}
	if cfg.PackageSize <= 0 {
		cfg.PackageSize = DefaultPackageSize
	}
	if cfg.RequeuePolicy == "" {
		cfg.RequeuePolicy = session.RequeueImmediate
	}
	if !cfg.RequeuePolicy.Valid() {
		return cfg, fmt.Errorf("config %s: unknown requeue_policy %q", path, cfg.RequeuePolicy)
	}
	return cfg, nil
}

// DefaultPath resolves the config file location: VOQUAB_CONFIG env var,
// then $XDG_CONFIG_HOME/voquab/config.yaml, then ~/.config/voquab/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv("VOQUAB_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "voquab", "config.yaml"), nil
}
