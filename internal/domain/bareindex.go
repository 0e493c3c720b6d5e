package domain

import (
	"fmt"
	"sort"
	"time"
)

// BareFile is one unclassified PDF in the working folder.
type BareFile struct {
	Name       string
	ModifiedAt time.Time
}

// BareIndex maps 1-based display indices to bare filenames, ordered by
// modification time descending (most recent first). The index is the
// contract a rename uses to find "the file shown at row K": a rename must
// update the affected entry through Rename, and any other mutation of the
// directory listing invalidates the whole index.
type BareIndex struct {
	files []BareFile
	valid bool
}

// NewBareIndex builds an index from an unordered listing.
func NewBareIndex(files []BareFile) *BareIndex {
	sorted := make([]BareFile, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ModifiedAt.After(sorted[j].ModifiedAt)
	})
	return &BareIndex{files: sorted, valid: true}
}

// Len returns the number of indexed files.
func (idx *BareIndex) Len() int {
	return len(idx.files)
}

// Valid reports whether the index still reflects the directory it was built
// from.
func (idx *BareIndex) Valid() bool {
	return idx.valid
}

// Invalidate marks the index stale. Row-keyed lookups fail until a fresh
// index is built from the current directory state.
func (idx *BareIndex) Invalidate() {
	idx.valid = false
}

// Lookup resolves a 1-based display index to a filename.
func (idx *BareIndex) Lookup(displayIndex int) (string, error) {
	if !idx.valid {
		return "", fmt.Errorf("bare file index is stale; rebuild it from the folder")
	}
	if displayIndex < 1 || displayIndex > len(idx.files) {
		return "", fmt.Errorf("no bare file at index %d", displayIndex)
	}
	return idx.files[displayIndex-1].Name, nil
}

// Rename records that the file at displayIndex now carries newName, keeping
// the index consistent with the filesystem after a successful rename.
func (idx *BareIndex) Rename(displayIndex int, newName string) error {
	if _, err := idx.Lookup(displayIndex); err != nil {
		return err
	}
	idx.files[displayIndex-1].Name = newName
	return nil
}

// Files returns (displayIndex, filename) pairs in display order.
func (idx *BareIndex) Files() []BareFile {
	out := make([]BareFile, len(idx.files))
	copy(out, idx.files)
	return out
}
