package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tokdex/internal/application"
)

func TestRenamerRenameTo(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pdf"), 10)

	renamer := NewRenamer()
	if err := renamer.RenameTo(dir, "a.pdf", "b.pdf"); err != nil {
		t.Fatalf("RenameTo: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "a.pdf")); !os.IsNotExist(err) {
		t.Error("source should be gone")
	}
	if _, err := os.Stat(filepath.Join(dir, "b.pdf")); err != nil {
		t.Errorf("destination missing: %v", err)
	}
}

func TestRenamerRenameToSameName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pdf"), 10)

	renamer := NewRenamer()
	if err := renamer.RenameTo(dir, "a.pdf", "a.pdf"); err != nil {
		t.Errorf("same-name rename should be a no-op, got %v", err)
	}
}

func TestRenamerRenameToMissingSource(t *testing.T) {
	renamer := NewRenamer()
	err := renamer.RenameTo(t.TempDir(), "missing.pdf", "b.pdf")
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRenamerRenameToConflict(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.pdf"), 10)
	writeFile(t, filepath.Join(dir, "b.pdf"), 20)

	renamer := NewRenamer()
	err := renamer.RenameTo(dir, "a.pdf", "b.pdf")
	if !errors.Is(err, application.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Nothing on disk changed.
	if _, err := os.Stat(filepath.Join(dir, "a.pdf")); err != nil {
		t.Errorf("source should be untouched: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "b.pdf"))
	if err != nil {
		t.Fatalf("destination: %v", err)
	}
	if info.Size() != 20 {
		t.Errorf("destination was clobbered, size = %d", info.Size())
	}
}

func TestRenamerApplyPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "report.pdf"), 10)

	renamer := NewRenamer()
	newName, err := renamer.ApplyPrefix(dir, "report.pdf", "AB")
	if err != nil {
		t.Fatalf("ApplyPrefix: %v", err)
	}
	if newName != "A B report.pdf" {
		t.Errorf("newName = %q", newName)
	}
	if _, err := os.Stat(filepath.Join(dir, "A B report.pdf")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
}

func TestRenamerApplyPrefixInvalidCode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "report.pdf"), 10)

	renamer := NewRenamer()
	_, err := renamer.ApplyPrefix(dir, "report.pdf", "A/B")
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "report.pdf")); err != nil {
		t.Errorf("source should be untouched: %v", err)
	}
}
