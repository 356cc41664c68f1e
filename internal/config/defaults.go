package config

const (
	defaultCSVPath      = "paintings-data.csv"
	defaultAssetsDir    = "images/paintings"
	defaultStateDir     = "~/.local/share/easel"
	defaultLogDir       = "~/.local/share/easel/logs"
	defaultBackupSuffix = ".backup"
	defaultAffirmative  = "yes"
	defaultStartAnchor  = "    <!-- Gallery Section -->"
	defaultEndAnchor    = "    <!-- Contact Section -->"
	defaultStyleMarker  = "        /* Gallery Section */"
	defaultStyleGuard   = ".featured-gallery"
	defaultScriptMarker = "        // Smooth scrolling for navigation"
	defaultScriptGuard  = "function showTab("
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults. The category
// set and anchors match the portfolio site this tool grew up against.
func Default() Config {
	return Config{
		Paths: Paths{
			CSVPath:   defaultCSVPath,
			AssetsDir: defaultAssetsDir,
			StateDir:  defaultStateDir,
			LogDir:    defaultLogDir,
		},
		Targets: []Target{
			{
				Path:        "index.html",
				StartAnchor: defaultStartAnchor,
				EndAnchor:   defaultEndAnchor,
				ApplyStyles: true,
				ApplyScript: true,
			},
		},
		Categories: []Category{
			{Key: "boston", Label: "Boston, MA"},
			{Key: "delaware", Label: "Delaware, OH"},
			{Key: "misc", Label: "Other Pieces"},
		},
		Gallery: Gallery{
			BackupSuffix: defaultBackupSuffix,
			Affirmative:  defaultAffirmative,
			StyleMarker:  defaultStyleMarker,
			StyleGuard:   defaultStyleGuard,
			ScriptMarker: defaultScriptMarker,
			ScriptGuard:  defaultScriptGuard,
		},
		Validation: Validation{
			StrictAssets: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: true,
		},
	}
}
