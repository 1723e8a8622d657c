package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Write stores cfg as YAML at path. An existing file is only replaced when force is set.
func Write(path string, cfg SiteConfig, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Example returns the configuration written by `blogbuilder init`.
func Example() SiteConfig {
	return SiteConfig{
		Title:       "My Blog",
		URL:         "https://example.com",
		Description: "Notes and articles",
	}
}
