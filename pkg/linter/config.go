package linter

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the linting configuration.
type Config struct {
	Version    string          `yaml:"version"`
	Rules      map[string]bool `yaml:"rules"` // rule name -> enabled; absent means enabled
	Thresholds ThresholdConfig `yaml:"thresholds"`
}

// ThresholdConfig holds the tunable rule constants.
type ThresholdConfig struct {
	// MinimumFontSize is the smallest legible size; below it is an error.
	MinimumFontSize int `yaml:"minimum_font_size"`
	// RecommendedFontSize is the advisory size; below it is a warning.
	RecommendedFontSize int `yaml:"recommended_font_size"`
	// CJKCharWidth is the box width each CJK/Kana character needs.
	CJKCharWidth int `yaml:"cjk_char_width"`
}

// DefaultConfig returns the default linting configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "v1",
		Rules:   make(map[string]bool),
		Thresholds: ThresholdConfig{
			MinimumFontSize:     14,
			RecommendedFontSize: 18,
			CJKCharWidth:        30,
		},
	}
}

// RuleEnabled reports whether a rule should run. Rules are enabled
// unless the config disables them by name.
func (c *Config) RuleEnabled(name string) bool {
	if enabled, ok := c.Rules[name]; ok {
		return enabled
	}
	return true
}

// LoadConfig loads configuration from a file. Threshold fields left at
// zero fall back to the defaults so partial config files stay valid.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}
	config.applyDefaults()

	return config, nil
}

// LoadConfigFromDir searches for a config file in the directory,
// returning the defaults when none exists.
func LoadConfigFromDir(dir string) (*Config, error) {
	configNames := []string{"mxlint.yaml", "mxlint.yml", ".mxlint.yaml", ".mxlint.yml"}

	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
	}

	return DefaultConfig(), nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig().Thresholds
	if c.Thresholds.MinimumFontSize == 0 {
		c.Thresholds.MinimumFontSize = defaults.MinimumFontSize
	}
	if c.Thresholds.RecommendedFontSize == 0 {
		c.Thresholds.RecommendedFontSize = defaults.RecommendedFontSize
	}
	if c.Thresholds.CJKCharWidth == 0 {
		c.Thresholds.CJKCharWidth = defaults.CJKCharWidth
	}
	if c.Rules == nil {
		c.Rules = make(map[string]bool)
	}
}
