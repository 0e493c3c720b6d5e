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
)

// tokDocument is the persisted classification document shape.
type tokDocument struct {
	ToK []domain.TokEntry `json:"ToK"`
}

// TokStore persists the flat classification entry list. Unlike the catalog
// store it backs up by renaming the live document out of the way: the file
// is the sole authoritative copy of the user-entered labels, so the prior
// version is preserved rather than duplicated.
type TokStore struct {
	path string
	now  func() time.Time
}

// NewTokStore creates a store over the given document path.
func NewTokStore(path string) *TokStore {
	return &TokStore{path: path, now: time.Now}
}

// Load reads the entry list. A missing document is a NotFoundError; a
// document without the ToK key is a FormatError.
func (s *TokStore) Load() ([]domain.TokEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &application.NotFoundError{Path: s.path}
		}
		return nil, fmt.Errorf("reading classification document: %w", err)
	}

	var doc struct {
		ToK *[]domain.TokEntry `json:"ToK"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &application.FormatError{Path: s.path, Reason: err.Error()}
	}
	if doc.ToK == nil {
		return nil, &application.FormatError{Path: s.path, Reason: `missing "ToK" key`}
	}
	return *doc.ToK, nil
}

// Save writes the entries sorted by code. An existing document is renamed
// to a timestamped sibling first; the rename must succeed before the new
// document is written.
func (s *TokStore) Save(entries []domain.TokEntry) (string, error) {
	sorted := make([]domain.TokEntry, len(entries))
	copy(sorted, entries)
	domain.SortEntries(sorted)

	backupName := ""
	if _, err := os.Stat(s.path); err == nil {
		stem := strings.TrimSuffix(filepath.Base(s.path), filepath.Ext(s.path))
		backupName = fmt.Sprintf("%s_%s.json", stem, s.now().Format(backupTimeFormat))
		backupPath := filepath.Join(filepath.Dir(s.path), backupName)
		if err := os.Rename(s.path, backupPath); err != nil {
			return "", fmt.Errorf("backing up classification document: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking classification document: %w", err)
	}

	data, err := json.MarshalIndent(tokDocument{ToK: sorted}, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encoding classification document: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return "", fmt.Errorf("creating document folder: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return "", fmt.Errorf("writing classification document: %w", err)
	}
	return backupName, nil
}
