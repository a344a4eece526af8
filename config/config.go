package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-piano/tone"
)

// DefaultTitle is shown above the keyboard.
const DefaultTitle = "Interactive Piano"

// DefaultKeyCount is the number of catalog keys.
const DefaultKeyCount = 16

// AudioConfig controls the tone output
type AudioConfig struct {
	SampleRate int  `json:"sampleRate,omitempty"`
	Disabled   bool `json:"disabled,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Title string `json:"title,omitempty"`
	// KeyCount is stored and displayed but never used to shorten the keyboard.
	KeyCount int         `json:"keyCount,omitempty"`
	Palette  string      `json:"palette,omitempty"` // builtin name or .gpl path
	Audio    AudioConfig `json:"audio,omitempty"`
	Debug    bool        `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Title:    DefaultTitle,
		KeyCount: DefaultKeyCount,
		Audio: AudioConfig{
			SampleRate: tone.DefaultSampleRate,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-piano"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path, or returns defaults if it does not exist
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()

	return cfg, nil
}

// normalize restores defaults for zero or invalid values
func (c *Config) normalize() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.KeyCount <= 0 {
		c.KeyCount = DefaultKeyCount
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = tone.DefaultSampleRate
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
