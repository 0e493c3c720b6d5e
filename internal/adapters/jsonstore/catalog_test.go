package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tokdex/internal/application"
	"tokdex/internal/domain"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 45, 0, time.UTC)
	}
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		{
			Size: 100,
			Files: []domain.FileEntry{
				{
					Filename: "dup.pdf",
					ToK:      "AB",
					Locations: []domain.Location{
						{Folder: domain.RootFolder, Created: "2026-01-01 10:00:00", Modified: "2026-01-02 11:00:00"},
						{Folder: "archive", Created: "2026-01-01 10:00:00", Modified: "2026-01-02 11:00:00"},
					},
				},
			},
		},
	}
}

func TestCatalogStoreLoadMissing(t *testing.T) {
	store := NewCatalogStore(filepath.Join(t.TempDir(), "pdf-files-by-size.json"))
	catalog, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if catalog != nil {
		t.Errorf("missing document should load as nil, got %+v", catalog)
	}
}

func TestCatalogStoreLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdf-files-by-size.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewCatalogStore(path)
	_, err := store.Load()
	if !errors.Is(err, application.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestCatalogStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdf-files-by-size.json")
	store := NewCatalogStore(path)
	store.now = fixedClock()

	catalog := testCatalog()
	result, err := store.Save(catalog, true)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if result.WrittenPath != path {
		t.Errorf("WrittenPath = %q", result.WrittenPath)
	}
	if result.BackupPath != "" {
		t.Errorf("first save should have no backup, got %q", result.BackupPath)
	}
	if result.Stats.SizeGroups != 1 || result.Stats.FileEntries != 1 || result.Stats.Locations != 2 {
		t.Errorf("Stats = %+v", result.Stats)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Size != 100 {
		t.Fatalf("loaded = %+v", loaded)
	}
	entry := loaded[0].Files[0]
	if entry.Filename != "dup.pdf" || entry.ToK != "AB" || len(entry.Locations) != 2 {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Locations[0].Folder != domain.RootFolder {
		t.Errorf("first location = %+v", entry.Locations[0])
	}
}

func TestCatalogStoreBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pdf-files-by-size.json")
	store := NewCatalogStore(path)
	store.now = fixedClock()

	if _, err := store.Save(testCatalog(), true); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	firstBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	result, err := store.Save(domain.Catalog{}, true)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}

	wantBackup := filepath.Join(dir, "pdf-files-by-size-old-files", "pdf-files-by-size_2026-03-14_09-30-45.json")
	if result.BackupPath != wantBackup {
		t.Errorf("BackupPath = %q, want %q", result.BackupPath, wantBackup)
	}

	backupBytes, err := os.ReadFile(result.BackupPath)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(backupBytes) != string(firstBytes) {
		t.Error("backup is not a byte-for-byte copy of the prior document")
	}
}

func TestCatalogStoreSaveWithoutBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pdf-files-by-size.json")
	store := NewCatalogStore(path)
	store.now = fixedClock()

	if _, err := store.Save(testCatalog(), true); err != nil {
		t.Fatalf("first Save: %v", err)
	}
	result, err := store.Save(domain.Catalog{}, false)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if result.BackupPath != "" {
		t.Errorf("BackupPath = %q without makeBackup", result.BackupPath)
	}
	if _, err := os.Stat(filepath.Join(dir, "pdf-files-by-size-old-files")); !os.IsNotExist(err) {
		t.Error("no backup folder should be created without makeBackup")
	}
}
