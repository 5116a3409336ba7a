// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, merging, and persistence
// helpers for Transferlist. It uses Viper for file/env/flag parsing and
// goccy/go-yaml to write configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Language string   `mapstructure:"language" yaml:"language"`
	Log      Log      `mapstructure:"log" yaml:"log"`
	Catalog  Catalog  `mapstructure:"catalog" yaml:"catalog"`
	Database Database `mapstructure:"database" yaml:"database"`
}

// Log configures the application logger.
type Log struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log output while the TUI owns the terminal. Empty
	// discards it.
	File string `mapstructure:"file" yaml:"file,omitempty"`
}

// Catalog selects where the item universe comes from.
type Catalog struct {
	// Source is one of "mock", "file" or "db".
	Source string `mapstructure:"source" yaml:"source"`
	Path   string `mapstructure:"path" yaml:"path,omitempty"`
	Count  int    `mapstructure:"count" yaml:"count"`
}

// Database configures the item catalog database.
type Database struct {
	Type string `mapstructure:"type" yaml:"type"`
	Dsn  string `mapstructure:"dsn" yaml:"dsn"`
}

// Defaults returns the default configuration values keyed by viper path.
func Defaults() map[string]any {
	return map[string]any{
		"language":       "en",
		"log.level":      "info",
		"log.file":       "",
		"catalog.source": "mock",
		"catalog.count":  20,
		"database.type":  "sqlite",
		"database.dsn":   "./transferlist.db",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Transferlist")
		default: // Linux, macOS, etc.
			configDir = "/etc/transferlist"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "transferlist")
	}

	return filepath.Join(configDir, "transferlist.yaml"), nil
}

// LoadConfig resolves configuration in increasing precedence: defaults,
// config file, environment (TRANSFERLIST_*), then flags bound on cmd.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("transferlist")
	v.SetConfigType("yaml")

	// 3. An explicit --config path has the highest precedence for files.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file. Missing files are fine; the
	// caller decides whether to persist defaults.
	readErr := v.ReadInConfig()
	if readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return c, readErr
		}
	}

	// 6. Read from environment variables
	v.SetEnvPrefix("transferlist")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 7. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, readErr
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
