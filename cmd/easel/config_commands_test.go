package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIConfigInitAndValidate(t *testing.T) {
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")

	out, _, err := runCLI(t, configPath, "config", "init", "--path", configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration to") {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	_, _, err = runCLI(t, configPath, "config", "init", "--path", configPath)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected refusal without --overwrite, got %v", err)
	}

	if _, _, err := runCLI(t, configPath, "config", "init", "--path", configPath, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestCLIConfigShowAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, env.csvPath) {
		t.Fatalf("config show missing catalog path: %q", out)
	}
	if !strings.Contains(out, "boston") {
		t.Fatalf("config show missing default categories: %q", out)
	}

	out, _, err = runCLI(t, env.configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected config validate output: %q", out)
	}
}
