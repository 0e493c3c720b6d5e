package domain

import (
	"testing"
	"time"
)

func record(base, code, folder string, size int64) FileRecord {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return FileRecord{
		BaseName:   base,
		Code:       code,
		Folder:     folder,
		Size:       size,
		CreatedAt:  ts,
		ModifiedAt: ts,
	}
}

func TestBuildIndex(t *testing.T) {
	records := []FileRecord{
		record("a.pdf", "", RootFolder, 100),
		record("b.pdf", "", "sub", 100),
		record("c.pdf", "", "sub", 200),
	}

	index := BuildIndex(records)
	if len(index) != 2 {
		t.Fatalf("expected 2 size buckets, got %d", len(index))
	}
	if len(index[100]) != 2 {
		t.Errorf("expected 2 records of size 100, got %d", len(index[100]))
	}
	if len(index[200]) != 1 {
		t.Errorf("expected 1 record of size 200, got %d", len(index[200]))
	}
	if index[100][0].BaseName != "a.pdf" {
		t.Errorf("discovery order not preserved: got %q first", index[100][0].BaseName)
	}
}

func TestToCatalogDuplicatesOnly(t *testing.T) {
	index := BuildIndex([]FileRecord{
		record("a.pdf", "", RootFolder, 100),
		record("a.pdf", "", "sub", 100),
		record("unique.pdf", "", RootFolder, 200),
	})

	catalog := ToCatalog(index, true)
	if len(catalog) != 1 {
		t.Fatalf("expected 1 size group, got %d", len(catalog))
	}
	if catalog[0].Size != 100 {
		t.Errorf("expected size 100, got %d", catalog[0].Size)
	}

	full := ToCatalog(index, false)
	if len(full) != 2 {
		t.Fatalf("expected 2 size groups without filtering, got %d", len(full))
	}
}

func TestToCatalogSizesAscending(t *testing.T) {
	index := BuildIndex([]FileRecord{
		record("big.pdf", "", RootFolder, 5000),
		record("big.pdf", "", "sub", 5000),
		record("small.pdf", "", RootFolder, 10),
		record("small.pdf", "", "sub", 10),
	})

	catalog := ToCatalog(index, true)
	if len(catalog) != 2 {
		t.Fatalf("expected 2 size groups, got %d", len(catalog))
	}
	if catalog[0].Size != 10 || catalog[1].Size != 5000 {
		t.Errorf("sizes not ascending: %d, %d", catalog[0].Size, catalog[1].Size)
	}
}

func TestToCatalogGroupsLocationsByName(t *testing.T) {
	// The same document in two folders: once classified, once bare.
	index := BuildIndex([]FileRecord{
		record("report.pdf", "AB", RootFolder, 1234),
		record("report.pdf", "", "archive", 1234),
	})

	catalog := ToCatalog(index, true)
	if len(catalog) != 1 {
		t.Fatalf("expected 1 size group, got %d", len(catalog))
	}
	files := catalog[0].Files
	if len(files) != 1 {
		t.Fatalf("expected 1 file entry, got %d", len(files))
	}
	entry := files[0]
	if entry.Filename != "report.pdf" {
		t.Errorf("filename = %q", entry.Filename)
	}
	if entry.ToK != "AB" {
		t.Errorf("ToK = %q, want %q", entry.ToK, "AB")
	}
	if len(entry.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(entry.Locations))
	}
	if entry.Locations[0].Folder != RootFolder || entry.Locations[1].Folder != "archive" {
		t.Errorf("locations out of discovery order: %+v", entry.Locations)
	}
	if entry.Locations[0].Modified != "2026-03-14 09:30:00" {
		t.Errorf("modified timestamp = %q", entry.Locations[0].Modified)
	}
}

func TestToCatalogCodesSortedSet(t *testing.T) {
	index := BuildIndex([]FileRecord{
		record("report.pdf", "ZZ", RootFolder, 100),
		record("report.pdf", "AB", "sub", 100),
		record("report.pdf", "AB", "other", 100),
	})

	catalog := ToCatalog(index, false)
	got := catalog[0].Files[0].ToK
	if got != "AB;ZZ" {
		t.Errorf("ToK = %q, want %q", got, "AB;ZZ")
	}
}

func TestToCatalogFileEntriesSortedByName(t *testing.T) {
	index := BuildIndex([]FileRecord{
		record("zeta.pdf", "", RootFolder, 100),
		record("alpha.pdf", "", "sub", 100),
	})

	catalog := ToCatalog(index, false)
	files := catalog[0].Files
	if len(files) != 2 {
		t.Fatalf("expected 2 file entries, got %d", len(files))
	}
	if files[0].Filename != "alpha.pdf" || files[1].Filename != "zeta.pdf" {
		t.Errorf("entries not sorted by name: %q, %q", files[0].Filename, files[1].Filename)
	}
}
