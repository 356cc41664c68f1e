package catalog

import (
	"fmt"
	"strings"

	"easel/internal/config"
	"easel/internal/fileutil"
)

// Violation is one failed check against one record.
type Violation struct {
	Row     int
	Field   string
	Message string
	// Warning violations are reported but do not fail the run.
	Warning bool
}

func (v Violation) String() string {
	if v.Field != "" {
		return fmt.Sprintf("row %d: %s: %s", v.Row, v.Field, v.Message)
	}
	return fmt.Sprintf("row %d: %s", v.Row, v.Message)
}

// Result collects every violation found across the record set.
type Result struct {
	Violations []Violation
}

// Failed reports whether any non-warning violation was recorded.
func (r Result) Failed() bool {
	for _, v := range r.Violations {
		if !v.Warning {
			return true
		}
	}
	return false
}

// Errors returns the fatal violations.
func (r Result) Errors() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if !v.Warning {
			out = append(out, v)
		}
	}
	return out
}

// Warnings returns the non-fatal violations.
func (r Result) Warnings() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Warning {
			out = append(out, v)
		}
	}
	return out
}

// Validate checks every record and collects all violations rather than
// stopping at the first: required fields non-empty, location within the
// configured category set, and the derived asset file present on disk.
// Asset existence is fatal or a warning per validation.strict_assets.
func Validate(cfg *config.Config, records []Record) Result {
	var result Result

	for _, rec := range records {
		for _, check := range []struct {
			field string
			value string
		}{
			{"title", rec.Title},
			{"location", rec.Location},
			{"filename", rec.Filename},
			{"medium", rec.Medium},
			{"price", rec.Price},
			{"description", rec.Description},
		} {
			if check.value == "" {
				result.Violations = append(result.Violations, Violation{
					Row:     rec.Row,
					Field:   check.field,
					Message: "missing value",
				})
			}
		}

		locationKnown := cfg.IsCategory(rec.Location)
		if rec.Location != "" && !locationKnown {
			result.Violations = append(result.Violations, Violation{
				Row:     rec.Row,
				Field:   "location",
				Message: fmt.Sprintf("invalid location %q (must be one of %s)", rec.Location, strings.Join(cfg.CategoryKeys(), ", ")),
			})
		}

		// An asset check only makes sense once the path components exist.
		if locationKnown && rec.Filename != "" {
			assetPath := cfg.AssetPath(rec.Location, rec.Filename)
			if !fileutil.FileExists(assetPath) {
				result.Violations = append(result.Violations, Violation{
					Row:     rec.Row,
					Field:   "filename",
					Message: fmt.Sprintf("image not found: %s", assetPath),
					Warning: !cfg.Validation.StrictAssets,
				})
			}
		}
	}

	return result
}
