package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	csvPath    string
	assetsDir  string
	targetPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "easel.toml"),
		csvPath:    filepath.Join(base, "paintings-data.csv"),
		assetsDir:  filepath.Join(base, "images", "paintings"),
		targetPath: filepath.Join(base, "index.html"),
	}

	content := fmt.Sprintf(`[paths]
csv_path = %q
assets_dir = %q
state_dir = %q
log_dir = %q

[[targets]]
path = %q
start_anchor = "<!-- GALLERY:START -->"
end_anchor = "<!-- GALLERY:END -->"

[validation]
strict_assets = false

[logging]
format = "json"
level = "warn"
`,
		env.csvPath,
		env.assetsDir,
		filepath.Join(base, "state"),
		filepath.Join(base, "logs"),
		env.targetPath,
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

func (e *cliTestEnv) writeCatalog(t *testing.T, rows ...string) {
	t.Helper()
	lines := append([]string{"title,location,filename,medium,price,description,featured"}, rows...)
	if err := os.WriteFile(e.csvPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
}

func (e *cliTestEnv) writePage(t *testing.T) {
	t.Helper()
	page := strings.Join([]string{
		"<html><body>",
		"<!-- GALLERY:START -->",
		"<p>placeholder</p>",
		"<!-- GALLERY:END -->",
		"</body></html>",
	}, "\n")
	if err := os.WriteFile(e.targetPath, []byte(page), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIPublishValidateAndHistory(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeCatalog(t,
		"Harbor Dawn,boston,harbor-dawn.jpg,Oil on canvas,450,Sunrise over the inner harbor,yes",
		"Quiet Field,delaware,quiet-field.jpg,Acrylic,300,Late summer pasture,no",
	)
	env.writePage(t)

	out, _, err := runCLI(t, env.configPath, "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "Catalog valid: 2 records (1 featured)") {
		t.Fatalf("unexpected validate output: %q", out)
	}

	out, _, err = runCLI(t, env.configPath, "publish")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !strings.Contains(out, "Published 2 records (1 featured)") {
		t.Fatalf("unexpected publish output: %q", out)
	}

	page, err := os.ReadFile(env.targetPath)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if !strings.Contains(string(page), "Harbor Dawn") {
		t.Fatal("target page missing rendered gallery")
	}
	if _, err := os.Stat(env.targetPath + ".backup"); err != nil {
		t.Fatalf("expected backup next to target: %v", err)
	}

	out, _, err = runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "succeeded") {
		t.Fatalf("history missing the publish run: %q", out)
	}
}

func TestCLIPublishDryRun(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeCatalog(t,
		"Harbor Dawn,boston,harbor-dawn.jpg,Oil on canvas,450,Sunrise over the inner harbor,yes",
	)
	env.writePage(t)

	before, err := os.ReadFile(env.targetPath)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "publish", "--dry-run")
	if err != nil {
		t.Fatalf("publish --dry-run: %v", err)
	}
	if !strings.Contains(out, "Dry run: no files were written") {
		t.Fatalf("unexpected dry-run output: %q", out)
	}

	after, err := os.ReadFile(env.targetPath)
	if err != nil {
		t.Fatalf("reread target: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Fatal("dry run must leave the target untouched")
	}
}

func TestCLIValidateReportsViolations(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeCatalog(t,
		"Harbor Dawn,atlantis,harbor-dawn.jpg,Oil on canvas,450,Sunrise,no",
	)

	out, _, err := runCLI(t, env.configPath, "validate")
	if err == nil {
		t.Fatal("expected validate to fail")
	}
	if !strings.Contains(out, "row 1") || !strings.Contains(out, "location") {
		t.Fatalf("expected a location violation in output: %q", out)
	}
}

func TestCLIPreviewPrintsMarkup(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeCatalog(t,
		"Harbor Dawn,boston,harbor-dawn.jpg,Oil on canvas,450,Sunrise over the inner harbor,yes",
	)

	out, _, err := runCLI(t, env.configPath, "preview")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if !strings.Contains(out, "Harbor Dawn") || !strings.Contains(out, "painting-card") {
		t.Fatalf("preview missing gallery markup: %q", out)
	}
	if strings.Contains(out, "function showTab(") {
		t.Fatalf("preview must not include the script without --script: %q", out)
	}

	out, _, err = runCLI(t, env.configPath, "preview", "--script")
	if err != nil {
		t.Fatalf("preview --script: %v", err)
	}
	if !strings.Contains(out, "function showTab(") {
		t.Fatalf("preview --script missing the tab script: %q", out)
	}
}

func TestCLIPublishFailsOnMissingAnchors(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeCatalog(t,
		"Harbor Dawn,boston,harbor-dawn.jpg,Oil on canvas,450,Sunrise over the inner harbor,yes",
	)
	if err := os.WriteFile(env.targetPath, []byte("<html><body>no anchors</body></html>"), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}

	_, _, err := runCLI(t, env.configPath, "publish")
	if err == nil {
		t.Fatal("expected publish to fail without anchors")
	}
	if !strings.Contains(err.Error(), env.targetPath) {
		t.Fatalf("error should name the failing target: %v", err)
	}
}
