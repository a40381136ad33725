// Package config loads classboard settings from YAML and validates them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/classboard/internal/model"
	"github.com/idilsaglam/classboard/internal/roster"
	"github.com/idilsaglam/classboard/internal/todo"
)

// Store backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

const (
	envTheme     = "CLASSBOARD_THEME"
	envStorePath = "CLASSBOARD_STORE_PATH"
	dirName      = ".classboard"
	fileName     = "config.yaml"
)

// Config is the full application configuration.
type Config struct {
	Theme  string          `yaml:"theme" validate:"mode"`
	Store  StoreConfig     `yaml:"store"`
	Log    LogConfig       `yaml:"log"`
	Roster []model.Student `yaml:"roster" validate:"omitempty,unique=ID,dive"`
}

// StoreConfig selects where the todo list is persisted.
type StoreConfig struct {
	Backend string `yaml:"backend" validate:"oneof=json sqlite memory"`
	Path    string `yaml:"path"`
	Key     string `yaml:"key" validate:"required"`
}

// LogConfig controls the zerolog output. An empty File while the dashboard
// runs discards logs; CLI commands write to stderr.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	File  string `yaml:"file"`
	Human bool   `yaml:"human"`
}

// Dir is the per-user data directory, ~/.classboard.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Default returns the built-in configuration: light theme, JSON store, seed roster.
func Default() Config {
	return Config{
		Theme:  "light",
		Store:  StoreConfig{Backend: BackendJSON, Key: todo.StorageKey},
		Log:    LogConfig{Level: "info", Human: true},
		Roster: roster.Seed(),
	}
}

// Load reads path over the defaults, applies environment overrides, fills in
// store paths and validates. With an empty path the default file is tried and a
// missing one is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(envTheme)); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(envStorePath)); v != "" {
		c.Store.Path = v
	}
}

// resolve fills the default store file for the chosen backend.
func (c *Config) resolve() error {
	if len(c.Roster) == 0 {
		c.Roster = roster.Seed()
	}
	if c.Store.Backend == BackendMemory || c.Store.Path != "" {
		return nil
	}
	dir, err := Dir()
	if err != nil {
		return err
	}
	switch c.Store.Backend {
	case BackendSQLite:
		c.Store.Path = filepath.Join(dir, "store.db")
	default:
		c.Store.Path = filepath.Join(dir, "store.json")
	}
	return nil
}
