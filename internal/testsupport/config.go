package testsupport

import (
	"path/filepath"
	"testing"

	"easel/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test:
// catalog CSV, asset tree, target page, state, and logs all live under it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CSVPath = filepath.Join(base, "paintings-data.csv")
	cfgVal.Paths.AssetsDir = filepath.Join(base, "images", "paintings")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Targets = []config.Target{{
		Path:        filepath.Join(base, "index.html"),
		StartAnchor: "<!-- GALLERY:START -->",
		EndAnchor:   "<!-- GALLERY:END -->",
	}}

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithLenientAssets downgrades missing asset files to warnings.
func WithLenientAssets() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Validation.StrictAssets = false
	}
}

// WithHistoryDisabled turns off publish-run history recording.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithTargets replaces the target list.
func WithTargets(targets ...config.Target) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Targets = targets
	}
}

// WithCategories replaces the category list.
func WithCategories(categories ...config.Category) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Categories = categories
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.CSVPath)
}
