package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateTargets(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.CSVPath == "" {
		return errors.New("paths.csv_path must be set")
	}
	if c.Paths.AssetsDir == "" {
		return errors.New("paths.assets_dir must be set")
	}
	return nil
}

func (c *Config) validateTargets() error {
	if len(c.Targets) == 0 {
		return errors.New("at least one [[targets]] entry must be set")
	}
	for i, target := range c.Targets {
		if target.Path == "" {
			return fmt.Errorf("targets[%d].path must be set", i)
		}
		if target.StartAnchor == "" {
			return fmt.Errorf("targets[%d].start_anchor must be set", i)
		}
		if target.EndAnchor == "" {
			return fmt.Errorf("targets[%d].end_anchor must be set", i)
		}
		if target.StartAnchor == target.EndAnchor {
			return fmt.Errorf("targets[%d]: start_anchor and end_anchor must differ", i)
		}
	}
	return nil
}

func (c *Config) validateCategories() error {
	if len(c.Categories) == 0 {
		return errors.New("at least one [[categories]] entry must be set")
	}
	seen := make(map[string]struct{}, len(c.Categories))
	for i, cat := range c.Categories {
		if cat.Key == "" {
			return fmt.Errorf("categories[%d].key must be set", i)
		}
		if strings.ContainsAny(cat.Key, "/\\") {
			return fmt.Errorf("categories[%d].key %q must not contain path separators", i, cat.Key)
		}
		if _, dup := seen[cat.Key]; dup {
			return fmt.Errorf("duplicate category key %q", cat.Key)
		}
		seen[cat.Key] = struct{}{}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
