package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tokdex/internal/application"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

const backupTimeFormat = "2006-01-02_15-04-05"

// CatalogStore persists the snapshot document as a single local JSON file.
// Backups of the prior document are copies placed in a dedicated subfolder
// next to the live file.
type CatalogStore struct {
	path string
	now  func() time.Time
}

// NewCatalogStore creates a store over the given document path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path, now: time.Now}
}

// Load reads the previously saved catalog. A missing document is not an
// error: it returns nil. A document that exists but cannot be parsed fails
// with a FormatError.
func (s *CatalogStore) Load() (domain.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, &application.FormatError{Path: s.path, Reason: err.Error()}
	}
	return catalog, nil
}

// Save writes the catalog. With makeBackup, an existing document is first
// copied byte-for-byte into the backup subfolder; the new document is not
// written unless that copy succeeded.
func (s *CatalogStore) Save(catalog domain.Catalog, makeBackup bool) (*ports.SaveResult, error) {
	result := &ports.SaveResult{WrittenPath: s.path}

	if makeBackup {
		backupPath, err := s.backup()
		if err != nil {
			return nil, err
		}
		result.BackupPath = backupPath
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("creating catalog folder: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing catalog: %w", err)
	}

	result.Stats = countStats(catalog)
	return result, nil
}

// backup copies the live document into <stem>-old-files/<stem>_<ts>.json.
// Returns "" when there is no document to back up.
func (s *CatalogStore) backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading catalog for backup: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))
	backupDir := filepath.Join(filepath.Dir(s.path), stem+"-old-files")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("creating backup folder: %w", err)
	}

	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s_%s.json", stem, s.now().Format(backupTimeFormat)))
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return backupPath, nil
}

func countStats(catalog domain.Catalog) ports.SaveStats {
	stats := ports.SaveStats{SizeGroups: len(catalog)}
	for _, group := range catalog {
		stats.FileEntries += len(group.Files)
		for _, file := range group.Files {
			stats.Locations += len(file.Locations)
		}
	}
	return stats
}
