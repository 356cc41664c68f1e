package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains file and directory configuration.
type Paths struct {
	CSVPath   string `toml:"csv_path"`
	AssetsDir string `toml:"assets_dir"`
	StateDir  string `toml:"state_dir"`
	LogDir    string `toml:"log_dir"`
}

// Target describes one page the publisher rewrites. The anchors are literal
// substrings; the span between them is replaced wholesale.
type Target struct {
	Path        string `toml:"path"`
	StartAnchor string `toml:"start_anchor"`
	EndAnchor   string `toml:"end_anchor"`
	ApplyStyles bool   `toml:"apply_styles"`
	ApplyScript bool   `toml:"apply_script"`
}

// Category is one gallery bucket. Config order is display order.
type Category struct {
	Key   string `toml:"key"`
	Label string `toml:"label"`
}

// Gallery contains rendering and splicing behavior knobs.
type Gallery struct {
	BackupSuffix string `toml:"backup_suffix"`
	Affirmative  string `toml:"affirmative"`
	StyleMarker  string `toml:"style_marker"`
	StyleGuard   string `toml:"style_guard"`
	ScriptMarker string `toml:"script_marker"`
	ScriptGuard  string `toml:"script_guard"`
}

// Validation contains catalog validation policy.
type Validation struct {
	// StrictAssets makes a missing asset file a fatal violation rather than
	// a warning.
	StrictAssets bool `toml:"strict_assets"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// History contains configuration for the publish-run history database.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Config encapsulates all configuration values for Easel.
//
// Configuration sections by subsystem:
//   - Paths: catalog CSV, asset root, state and log directories
//   - Targets: pages to splice, with their anchor pair and patch toggles
//   - Categories: gallery buckets in fixed display order
//   - Gallery: backup suffix, featured token, patch markers and guards
//   - Validation: asset-existence strictness
//   - Logging: log format and level
//   - History: publish-run history database toggle
type Config struct {
	Paths      Paths      `toml:"paths"`
	Targets    []Target   `toml:"targets"`
	Categories []Category `toml:"categories"`
	Gallery    Gallery    `toml:"gallery"`
	Validation Validation `toml:"validation"`
	Logging    Logging    `toml:"logging"`
	History    History    `toml:"history"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/easel/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has directory fields expanded and category keys normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("easel.toml")
	if err != nil {
		return "", false, err
	}

	// A project-local easel.toml wins over the home config so the tool can
	// be run from the site checkout with its own settings.
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StateDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// AssetPath resolves the on-disk path for a record's image.
func (c *Config) AssetPath(location, filename string) string {
	return filepath.Join(c.Paths.AssetsDir, location, filename)
}

// AssetURL resolves the URL embedded in generated markup. Always
// slash-separated regardless of platform.
func (c *Config) AssetURL(location, filename string) string {
	return strings.Join([]string{filepath.ToSlash(c.Paths.AssetsDir), location, filename}, "/")
}

// CategoryKeys returns the configured category keys in display order.
func (c *Config) CategoryKeys() []string {
	keys := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		keys = append(keys, cat.Key)
	}
	return keys
}

// CategoryLabel returns the display label for a category key, falling back
// to a title-cased key when no label is configured.
func (c *Config) CategoryLabel(key string) string {
	for _, cat := range c.Categories {
		if cat.Key == key && strings.TrimSpace(cat.Label) != "" {
			return cat.Label
		}
	}
	return cases.Title(language.English).String(key)
}

// IsCategory reports whether key is one of the configured category keys.
func (c *Config) IsCategory(key string) bool {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return true
		}
	}
	return false
}

// BackupPath returns the sibling backup path for a target page.
func (c *Config) BackupPath(target string) string {
	return target + c.Gallery.BackupSuffix
}

// HistoryDBPath returns the SQLite path for the publish-run history.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LockPath returns the path of the run lock file.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.StateDir, "easel.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
