// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; session cookies go to the OS
// keychain. Environment variables override the file on load.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"identikit/cli/internal/xdg"

	"github.com/caarlos0/env/v10"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	// Server is the identity API base URL (e.g. "https://id.example.com").
	Server    string    `json:"server" env:"IDENTIKIT_SERVER"`
	LogLevel  string    `json:"log_level" env:"IDENTIKIT_LOG_LEVEL"`
	Endpoints Endpoints `json:"endpoints,omitempty"`
}

// Endpoints holds per-operation path overrides, relative to Server.
// Empty fields fall back to the standard identity API paths.
type Endpoints struct {
	Register string `json:"register,omitempty" env:"IDENTIKIT_EP_REGISTER"`
	Login    string `json:"login,omitempty" env:"IDENTIKIT_EP_LOGIN"`
	Info     string `json:"info,omitempty" env:"IDENTIKIT_EP_INFO"`
	Roles    string `json:"roles,omitempty" env:"IDENTIKIT_EP_ROLES"`
	Logout   string `json:"logout,omitempty" env:"IDENTIKIT_EP_LOGOUT"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults. Environment
// variables are applied on top of whatever the file provided.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
		c.LogLevel = "info"
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
		if c.LogLevel == "" {
			c.LogLevel = "info"
		}
	}
	if err := env.Parse(&c); err != nil {
		return c, err
	}
	c.Server = strings.TrimRight(c.Server, "/")
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
