package ports

import "tokdex/internal/domain"

// SaveStats reports what a catalog save wrote.
type SaveStats struct {
	SizeGroups  int
	FileEntries int
	Locations   int
}

// SaveResult describes a completed catalog save.
type SaveResult struct {
	WrittenPath string
	BackupPath  string // "" when no backup was taken
	Stats       SaveStats
}

// CatalogStore persists the size-indexed snapshot document.
type CatalogStore interface {
	// Load returns the previously saved catalog, nil when no document
	// exists yet.
	Load() (domain.Catalog, error)

	// Save writes the catalog. With makeBackup, an existing document is
	// copied into the backup subfolder first; the write does not happen
	// unless the copy succeeded.
	Save(catalog domain.Catalog, makeBackup bool) (*SaveResult, error)
}

// TokStore persists the flat classification entry list. Backups are taken
// by renaming the prior document out of the way, since it is the sole
// authoritative copy of the user-entered labels.
type TokStore interface {
	Load() ([]domain.TokEntry, error)

	// Save writes the entries sorted by code, renaming any existing
	// document to a timestamped sibling first. Returns the backup filename,
	// "" when there was nothing to back up.
	Save(entries []domain.TokEntry) (string, error)
}
