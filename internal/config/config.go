// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for premia.
//
// Configuration sources, in order of precedence:
//   - Environment variables (PREMIA_API_URL, PREMIA_TIMEOUT_SECS)
//   - ~/.premia/config.toml
//   - Built-in defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/premialabs/premia-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete premia configuration.
type Config struct {
	// API settings for the insurance assistant service
	API APIConfig `toml:"api"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// APIConfig contains the service endpoint configuration.
type APIConfig struct {
	// BaseURL is the base URL of the insurance assistant service.
	BaseURL string `toml:"base_url"`
	// TimeoutSecs bounds each request, in seconds. Zero disables the
	// timeout, matching the service's own semantics; a hung call then
	// holds its in-flight flag until the connection dies.
	TimeoutSecs int `toml:"timeout_secs"`
}

// Timeout returns the request timeout as a duration, zero when disabled.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSecs) * time.Second
}

// UIConfig contains terminal UI configuration.
type UIConfig struct {
	// Theme selects the color theme: "auto", "dark", "light".
	Theme string `toml:"theme"`
	// ShowTimestamps renders a HH:MM timestamp under each chat message.
	ShowTimestamps bool `toml:"show_timestamps"`
	// Compact reduces vertical padding between messages.
	Compact bool `toml:"compact"`
}

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://127.0.0.1:8000",
			TimeoutSecs: 0,
		},
		UI: UIConfig{
			Theme:          "auto",
			ShowTimestamps: true,
			Compact:        false,
		},
	}
}

// =============================================================================
// PATHS
// =============================================================================

// Dir returns the premia configuration directory (~/.premia).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".premia"), nil
}

// Path returns the config file path (~/.premia/config.toml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the REPL history file path (~/.premia/history).
func HistoryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from the default path, applying defaults
// for anything unset and environment overrides on top. A missing config
// file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides layers environment variables over the loaded config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PREMIA_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("PREMIA_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			cfg.API.TimeoutSecs = secs
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: must be an absolute http(s) URL", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api.base_url scheme %q", u.Scheme)
	}
	if c.API.TimeoutSecs < 0 {
		return fmt.Errorf("api.timeout_secs must not be negative")
	}

	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("invalid ui.theme %q: must be auto, dark, or light", c.UI.Theme)
	}
	return nil
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to the default path atomically.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to an explicit path atomically.
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return util.AtomicWriteFile(path, buf.Bytes(), 0600)
}
