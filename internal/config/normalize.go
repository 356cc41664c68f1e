package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeTargets()
	c.normalizeCategories()
	c.normalizeGallery()
	c.normalizeLogging()
	return nil
}

// normalizePaths expands the state and log directories. The catalog CSV,
// assets directory, and target pages deliberately stay as written: the tool
// runs from the site checkout and those paths resolve against it.
func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.CSVPath = strings.TrimSpace(c.Paths.CSVPath)
	c.Paths.AssetsDir = strings.TrimSpace(c.Paths.AssetsDir)
	return nil
}

func (c *Config) normalizeTargets() {
	for i := range c.Targets {
		c.Targets[i].Path = strings.TrimSpace(c.Targets[i].Path)
	}
}

func (c *Config) normalizeCategories() {
	for i := range c.Categories {
		c.Categories[i].Key = strings.ToLower(strings.TrimSpace(c.Categories[i].Key))
		c.Categories[i].Label = strings.TrimSpace(c.Categories[i].Label)
	}
}

func (c *Config) normalizeGallery() {
	if strings.TrimSpace(c.Gallery.BackupSuffix) == "" {
		c.Gallery.BackupSuffix = defaultBackupSuffix
	}
	c.Gallery.Affirmative = strings.ToLower(strings.TrimSpace(c.Gallery.Affirmative))
	if c.Gallery.Affirmative == "" {
		c.Gallery.Affirmative = defaultAffirmative
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
