package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tokdex/internal/application"
	"tokdex/internal/domain"
)

// Renamer implements ports.FileRenamer. The existence checks and the rename
// syscall are serialized behind a mutex; between processes the check-then-act
// window remains.
type Renamer struct {
	mu sync.Mutex
}

// NewRenamer creates a new renamer.
func NewRenamer() *Renamer {
	return &Renamer{}
}

// ApplyPrefix renames folder/currentName so it carries code as a spaced
// prefix, returning the new filename. The source must exist and the
// destination must not; on failure nothing on disk changes.
func (r *Renamer) ApplyPrefix(folder, currentName, code string) (string, error) {
	if err := application.ValidateCode("code", code); err != nil {
		return "", err
	}
	newName := domain.FormatPrefix(code) + currentName
	if err := r.RenameTo(folder, currentName, newName); err != nil {
		return "", err
	}
	return newName, nil
}

// RenameTo renames folder/currentName to folder/newName, refusing to
// clobber an existing file.
func (r *Renamer) RenameTo(folder, currentName, newName string) error {
	if currentName == newName {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	src := filepath.Join(folder, currentName)
	dst := filepath.Join(folder, newName)

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return &application.NotFoundError{Path: src}
		}
		return fmt.Errorf("checking source: %w", err)
	}
	if _, err := os.Stat(dst); err == nil {
		return &application.ConflictError{Name: newName}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking destination: %w", err)
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("renaming %s: %w", currentName, err)
	}
	return nil
}
