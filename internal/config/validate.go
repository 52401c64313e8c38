package config

import (
	"fmt"
	"strings"

	"shelf/internal/pipeline"
	"shelf/internal/plan"
)

var validLogFormats = map[string]struct{}{"console": {}, "json": {}}

var validLogLevels = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}}

// Validate checks the normalized configuration for values the pipeline
// cannot act on.
func (c *Config) Validate() error {
	if c.Organize.DefaultMode != "" {
		if _, err := plan.ParseMode(c.Organize.DefaultMode); err != nil {
			return pipeline.Wrap(pipeline.ErrConfiguration, "config", "organize.default_mode", err.Error(), nil)
		}
	}

	if c.Logging.Format != "" {
		if _, ok := validLogFormats[c.Logging.Format]; !ok {
			return pipeline.Wrap(pipeline.ErrConfiguration, "config", "logging.format",
				fmt.Sprintf("unsupported value %q (valid: console, json)", c.Logging.Format), nil)
		}
	}
	if c.Logging.Level != "" {
		if _, ok := validLogLevels[c.Logging.Level]; !ok {
			return pipeline.Wrap(pipeline.ErrConfiguration, "config", "logging.level",
				fmt.Sprintf("unsupported value %q (valid: debug, info, warn, error)", c.Logging.Level), nil)
		}
	}

	for ext, category := range c.Categories.Overrides {
		if strings.ContainsAny(ext, `/\`) {
			return pipeline.Wrap(pipeline.ErrConfiguration, "config", "categories.overrides",
				fmt.Sprintf("extension %q must not contain path separators", ext), nil)
		}
		if strings.ContainsAny(category, `/\`) {
			return pipeline.Wrap(pipeline.ErrConfiguration, "config", "categories.overrides",
				fmt.Sprintf("category %q must not contain path separators", category), nil)
		}
	}

	for _, name := range c.Organize.IgnoreNames {
		if strings.ContainsAny(name, `/\`) {
			return pipeline.Wrap(pipeline.ErrConfiguration, "config", "organize.ignore_names",
				fmt.Sprintf("ignore name %q must be a bare file name", name), nil)
		}
	}

	return nil
}
