// Package config holds the optional site configuration consumed by the
// HTML renderer. All fields have working defaults; the config file is
// only needed to customize presentation.
package config

import (
	"fmt"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// SiteConfig customizes the generated site chrome.
type SiteConfig struct {
	Title            string   `yaml:"title,omitempty" json:"title,omitempty"`
	ThemeColor       string   `yaml:"theme_color,omitempty" json:"theme_color,omitempty"`
	ExtraStylesheets []string `yaml:"extra_stylesheets,omitempty" json:"extra_stylesheets,omitempty"`
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Default returns the configuration used when no config file is given.
func Default() *SiteConfig {
	return &SiteConfig{
		Title: "Documentation",
	}
}

// Load reads and validates a site configuration file.
func Load(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *SiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.ThemeColor, validation.Match(hexColor).Error("must be a hex color like #1e90ff")),
		validation.Field(&c.ExtraStylesheets, validation.Each(validation.Required)),
	)
}
