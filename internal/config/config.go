package config

import (
	"fmt"
	"strings"

	"midic/internal/errors"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPlayer is the external MIDI decoder started for a file.
	DefaultPlayer = "aplaymidi"
	// DefaultKill stops every running player process by name.
	DefaultKill = "killall"
	// DefaultDebugLog is used when --debug is set without --log-file.
	DefaultDebugLog = "midic-debug.log"
)

// Config is the effective runtime configuration. It is built from
// defaults and command line flags only; nothing is read from disk.
type Config struct {
	StartDir string `yaml:"start_dir"` // Initial directory, empty means current
	Player   struct {
		Command string `yaml:"command"` // Player binary, receives the file path
		Kill    string `yaml:"kill"`    // Kill-by-name binary, receives the player name
	} `yaml:"player"`
	Watch   bool   `yaml:"watch"`    // Refresh the listing on directory changes
	Debug   bool   `yaml:"debug"`    // Debug level logging
	LogFile string `yaml:"log_file"` // Log destination, empty discards logs
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.Player.Command = DefaultPlayer
	cfg.Player.Kill = DefaultKill
	return cfg
}

// Validate checks that the configuration can start a session.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Player.Command) == "" {
		return errors.NewConfigError("player.command", fmt.Errorf("must not be empty"))
	}
	if strings.TrimSpace(c.Player.Kill) == "" {
		return errors.NewConfigError("player.kill", fmt.Errorf("must not be empty"))
	}
	return nil
}

// LogPath returns where log output should go, or "" to discard it.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	if c.Debug {
		return DefaultDebugLog
	}
	return ""
}

// YAML renders the configuration for display.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, "error encoding config")
	}
	return string(data), nil
}
