package commands

import (
	"time"

	"tokdex/internal/application"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// fakeScanner serves canned results.
type fakeScanner struct {
	records   []domain.FileRecord
	patterned []domain.PatternedFile
	bare      []domain.BareFile
	scanErr   error
}

func (f *fakeScanner) Scan() ([]domain.FileRecord, error) {
	return f.records, f.scanErr
}

func (f *fakeScanner) ScanPatterned() ([]domain.PatternedFile, error) {
	return f.patterned, f.scanErr
}

func (f *fakeScanner) ListBare(folder string) (*domain.BareIndex, error) {
	return domain.NewBareIndex(f.bare), nil
}

// fakeCatalogStore keeps the catalog in memory and records saves.
type fakeCatalogStore struct {
	catalog    domain.Catalog
	saved      []domain.Catalog
	saveErr    error
	madeBackup bool
}

func (f *fakeCatalogStore) Load() (domain.Catalog, error) {
	return f.catalog, nil
}

func (f *fakeCatalogStore) Save(catalog domain.Catalog, makeBackup bool) (*ports.SaveResult, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = append(f.saved, catalog)
	f.madeBackup = makeBackup
	f.catalog = catalog
	return &ports.SaveResult{WrittenPath: "catalog.json"}, nil
}

// fakeTokStore keeps the entry list in memory and counts backups.
type fakeTokStore struct {
	entries []domain.TokEntry
	exists  bool
	saves   int
}

func (f *fakeTokStore) Load() ([]domain.TokEntry, error) {
	if !f.exists {
		return nil, &application.NotFoundError{Path: "tok.json"}
	}
	out := make([]domain.TokEntry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeTokStore) Save(entries []domain.TokEntry) (string, error) {
	backup := ""
	if f.exists {
		backup = "tok_2026-01-01_00-00-00.json"
	}
	sorted := make([]domain.TokEntry, len(entries))
	copy(sorted, entries)
	domain.SortEntries(sorted)
	f.entries = sorted
	f.exists = true
	f.saves++
	return backup, nil
}

// fakeRenamer records calls without touching a filesystem.
type fakeRenamer struct {
	calls []renameCall
	err   error
}

type renameCall struct {
	folder  string
	oldName string
	newName string
}

func (f *fakeRenamer) ApplyPrefix(folder, currentName, code string) (string, error) {
	if err := application.ValidateCode("code", code); err != nil {
		return "", err
	}
	newName := domain.FormatPrefix(code) + currentName
	if err := f.RenameTo(folder, currentName, newName); err != nil {
		return "", err
	}
	return newName, nil
}

func (f *fakeRenamer) RenameTo(folder, currentName, newName string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, renameCall{folder, currentName, newName})
	return nil
}

func bareSession(folder string, names ...string) *application.Session {
	ts := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	files := make([]domain.BareFile, len(names))
	for i, name := range names {
		// Listing order is mtime descending; stagger accordingly.
		files[i] = domain.BareFile{Name: name, ModifiedAt: ts.Add(-time.Duration(i) * time.Minute)}
	}
	session := application.NewSession()
	session.SetBareIndex(folder, domain.NewBareIndex(files))
	return session
}
