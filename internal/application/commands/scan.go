package commands

import (
	"context"
	"fmt"

	"tokdex/internal/application"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// ScanResult contains the outcome of a full library scan.
type ScanResult struct {
	TotalFiles     int
	DuplicateFiles int
	Catalog        domain.Catalog
	Diff           domain.DiffResult
	Save           *ports.SaveResult // nil when nothing changed
}

// ScanCommand walks the whole library, builds the size-indexed catalog,
// diffs it against the previous snapshot, and persists the new snapshot
// only when something changed.
type ScanCommand struct {
	session        *application.Session
	scanner        ports.LibraryScanner
	store          ports.CatalogStore
	DuplicatesOnly bool
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(session *application.Session, scanner ports.LibraryScanner, store ports.CatalogStore, duplicatesOnly bool) *ScanCommand {
	return &ScanCommand{
		session:        session,
		scanner:        scanner,
		store:          store,
		DuplicatesOnly: duplicatesOnly,
	}
}

// Execute runs the scan command.
func (c *ScanCommand) Execute(ctx context.Context) (*ScanResult, error) {
	if err := c.session.BeginScan(); err != nil {
		return nil, err
	}
	defer c.session.EndScan()

	records, err := c.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("scanning library: %w", err)
	}

	index := domain.BuildIndex(records)
	catalog := domain.ToCatalog(index, c.DuplicatesOnly)

	previous, err := c.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading previous snapshot: %w", err)
	}

	result := &ScanResult{
		TotalFiles:     len(records),
		DuplicateFiles: countDuplicates(index),
		Catalog:        catalog,
		Diff:           domain.Diff(previous, catalog),
	}

	if result.Diff.HasChanges {
		saved, err := c.store.Save(catalog, true)
		if err != nil {
			return nil, fmt.Errorf("saving snapshot: %w", err)
		}
		result.Save = saved
	}
	return result, nil
}

func countDuplicates(index domain.SizeIndex) int {
	count := 0
	for _, records := range index {
		if len(records) > 1 {
			count += len(records)
		}
	}
	return count
}
