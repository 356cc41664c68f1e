package catalog_test

import (
	"errors"
	"path/filepath"
	"testing"

	"easel/internal/catalog"
	"easel/internal/testsupport"
)

func TestLoadTrimsAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paintings-data.csv")
	testsupport.WriteCatalogAt(t, path,
		` Dawn , Boston ,dawn.jpg, Oil on canvas ,120, Morning light over the harbor ,YES`,
		`Dusk,boston,dusk.jpg,Oil on canvas,95,Evening view,no`,
	)

	records, err := catalog.Load(path, "yes")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Title != "Dawn" {
		t.Fatalf("title not trimmed: %q", first.Title)
	}
	if first.Location != "boston" {
		t.Fatalf("location not lowercased: %q", first.Location)
	}
	if first.Medium != "Oil on canvas" {
		t.Fatalf("medium not trimmed: %q", first.Medium)
	}
	if !first.Featured {
		t.Fatal("expected YES to mark featured")
	}
	if first.Row != 1 {
		t.Fatalf("expected 1-based row index, got %d", first.Row)
	}
	if records[1].Featured {
		t.Fatal("expected 'no' to leave record unfeatured")
	}
}

func TestLoadPreservesOrderAndDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	testsupport.WriteCatalogAt(t, path,
		`Mist,misc,mist.jpg,Watercolor,60,Fog,`,
		`Mist,misc,mist.jpg,Watercolor,60,Fog,`,
		`Dawn,boston,dawn.jpg,Oil,120,Light,yes`,
	)

	records, err := catalog.Load(path, "yes")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("duplicates must be kept: got %d records", len(records))
	}
	if records[0].Title != "Mist" || records[2].Title != "Dawn" {
		t.Fatalf("source order not preserved: %v, %v", records[0].Title, records[2].Title)
	}
	if records[2].Row != 3 {
		t.Fatalf("unexpected row index: %d", records[2].Row)
	}
}

func TestLoadFeaturedColumnAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	testsupport.WriteFile(t, path,
		"title,location,filename,medium,price,description\n"+
			"Dawn,boston,dawn.jpg,Oil,120,Light\n")

	records, err := catalog.Load(path, "yes")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if records[0].Featured {
		t.Fatal("expected unfeatured when column is absent")
	}
}

func TestLoadQuotedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	testsupport.WriteCatalogAt(t, path,
		`"Dawn, Revisited",boston,dawn.jpg,Oil,120,"A quiet, golden morning",yes`,
	)

	records, err := catalog.Load(path, "yes")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if records[0].Title != "Dawn, Revisited" {
		t.Fatalf("quoted comma mishandled: %q", records[0].Title)
	}
	if records[0].Description != "A quiet, golden morning" {
		t.Fatalf("quoted description mishandled: %q", records[0].Description)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.csv"), "yes")
	if !errors.Is(err, catalog.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	testsupport.WriteFile(t, path, "title,location,filename,medium,price\nDawn,boston,d.jpg,Oil,120\n")

	_, err := catalog.Load(path, "yes")
	if err == nil {
		t.Fatal("expected error for missing description column")
	}
}

func TestLoadRaggedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	testsupport.WriteFile(t, path, testsupport.CatalogHeader+"\nDawn,boston\n")

	_, err := catalog.Load(path, "yes")
	if err == nil {
		t.Fatal("expected error for ragged row")
	}
}

func TestLoadEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	testsupport.WriteCatalogAt(t, path)

	records, err := catalog.Load(path, "yes")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
