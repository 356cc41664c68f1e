package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"easel/internal/config"
)

// CatalogHeader is the full header row recognized by the loader.
const CatalogHeader = "title,location,filename,medium,price,description,featured"

// WriteCatalog writes a CSV catalog with the full header and the given data
// rows to the config's catalog path.
func WriteCatalog(t testing.TB, cfg *config.Config, rows ...string) {
	t.Helper()
	WriteCatalogAt(t, cfg.Paths.CSVPath, rows...)
}

// WriteCatalogAt writes a CSV catalog with the full header to path.
func WriteCatalogAt(t testing.TB, path string, rows ...string) {
	t.Helper()
	lines := append([]string{CatalogHeader}, rows...)
	WriteFile(t, path, strings.Join(lines, "\n")+"\n")
}

// WriteAsset creates an asset file under the config's asset tree so
// existence validation passes for the matching record.
func WriteAsset(t testing.TB, cfg *config.Config, location, filename string) {
	t.Helper()
	WriteFile(t, cfg.AssetPath(location, filename), "\x42")
}

// WritePage writes a minimal target page containing the target's anchor
// pair with some surrounding structure, and returns its contents.
func WritePage(t testing.TB, target config.Target) string {
	t.Helper()
	content := strings.Join([]string{
		"<html>",
		"<head><style>",
		"        /* Gallery Section */",
		"</style></head>",
		"<body>",
		target.StartAnchor,
		"<p>old gallery</p>",
		target.EndAnchor,
		"<script>",
		"        // Smooth scrolling for navigation",
		"</script>",
		"</body>",
		"</html>",
	}, "\n")
	WriteFile(t, target.Path, content)
	return content
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile reads path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
