// Package config loads, normalizes, and validates Easel's TOML
// configuration.
//
// Load resolves the config path (explicit flag, project-local easel.toml,
// then ~/.config/easel/config.toml), decodes over Default(), expands the
// state and log directories, and validates the result. Site-relative paths
// (catalog CSV, assets, target pages) are left untouched so the tool behaves
// the same regardless of where the config file lives.
package config
