package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrMissingInput marks the catalog CSV being absent. Callers treat it as a
// terminal "create your data file first" condition rather than a bug.
var ErrMissingInput = errors.New("catalog file not found")

var requiredColumns = []string{"title", "location", "filename", "medium", "price", "description"}

const featuredColumn = "featured"

// Load parses the catalog CSV at path into records in source row order.
// Text fields are trimmed, location is lowercased, and the featured flag is
// a case-insensitive match against affirmative. A missing featured column
// leaves every record unfeatured. Duplicate titles or filenames are
// permitted.
func Load(path, affirmative string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()

	records, err := parse(file, affirmative)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return records, nil
}

func parse(r io.Reader, affirmative string) ([]Record, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	featuredIdx, hasFeatured := columns[featuredColumn]

	affirmative = strings.ToLower(strings.TrimSpace(affirmative))

	var records []Record
	row := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		rec := Record{
			Title:       field(fields, columns["title"]),
			Location:    strings.ToLower(field(fields, columns["location"])),
			Filename:    field(fields, columns["filename"]),
			Medium:      field(fields, columns["medium"]),
			Price:       field(fields, columns["price"]),
			Description: field(fields, columns["description"]),
			Row:         row,
		}
		if hasFeatured {
			rec.Featured = strings.ToLower(field(fields, featuredIdx)) == affirmative
		}
		records = append(records, rec)
	}
	return records, nil
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
