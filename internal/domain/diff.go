package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// ChangeKind tags one snapshot-to-snapshot change record.
type ChangeKind string

const (
	ChangeInfo       ChangeKind = "INFO"
	ChangeNew        ChangeKind = "NEW"
	ChangeRemoved    ChangeKind = "REMOVED"
	ChangeMovedTo    ChangeKind = "MOVED_TO"
	ChangeMovedFrom  ChangeKind = "MOVED_FROM"
	ChangeModified   ChangeKind = "MODIFIED"
	ChangeTokChanged ChangeKind = "CLASSIFICATION_CHANGED"
)

// Change is one human-readable difference between two snapshots.
type Change struct {
	Kind ChangeKind
	Text string
}

func (c Change) String() string {
	return fmt.Sprintf("%s: %s", c.Kind, c.Text)
}

// DiffResult is the outcome of comparing two catalogs. Derived, never
// persisted.
type DiffResult struct {
	Changes    []Change
	HasChanges bool
}

type entryKey struct {
	size     int64
	filename string
}

type entryData struct {
	tok       string
	locations []Location
}

// Diff compares a previously persisted catalog against a fresh one and
// reports additions, removals, moves, timestamp changes, and classification
// changes. A nil previous catalog yields a single informational entry and
// HasChanges true. Neither input is mutated; entries come out ordered by
// size, then filename, then folder.
func Diff(previous, current Catalog) DiffResult {
	if previous == nil {
		return DiffResult{
			Changes: []Change{{
				Kind: ChangeInfo,
				Text: "no previous snapshot found - this is the first scan",
			}},
			HasChanges: true,
		}
	}

	old := flattenCatalog(previous)
	curr := flattenCatalog(current)

	var changes []Change
	for _, key := range sortedKeys(old, curr) {
		oldEntry, inOld := old[key]
		newEntry, inNew := curr[key]

		switch {
		case inNew && !inOld:
			changes = append(changes, Change{ChangeNew, fmt.Sprintf(
				"%s%s (size: %s bytes, %d location(s))",
				key.filename, tokSuffix(newEntry.tok), formatSize(key.size), len(newEntry.locations))})
		case inOld && !inNew:
			changes = append(changes, Change{ChangeRemoved, fmt.Sprintf(
				"%s%s (size: %s bytes, was in %d location(s))",
				key.filename, tokSuffix(oldEntry.tok), formatSize(key.size), len(oldEntry.locations))})
		default:
			changes = append(changes, diffEntry(key, oldEntry, newEntry)...)
		}
	}

	return DiffResult{Changes: changes, HasChanges: len(changes) > 0}
}

func diffEntry(key entryKey, prev, curr entryData) []Change {
	var changes []Change

	if prev.tok != curr.tok {
		changes = append(changes, Change{ChangeTokChanged, fmt.Sprintf(
			"%s - '%s' -> '%s'", key.filename, prev.tok, curr.tok)})
	}

	oldByFolder := locationsByFolder(prev.locations)
	newByFolder := locationsByFolder(curr.locations)

	for _, folder := range sortedFolders(newByFolder) {
		if _, ok := oldByFolder[folder]; !ok {
			changes = append(changes, Change{ChangeMovedTo, fmt.Sprintf(
				"%s now in: %s", key.filename, folder)})
		}
	}
	for _, folder := range sortedFolders(oldByFolder) {
		if _, ok := newByFolder[folder]; !ok {
			changes = append(changes, Change{ChangeMovedFrom, fmt.Sprintf(
				"%s no longer in: %s", key.filename, folder)})
		}
	}
	for _, folder := range sortedFolders(newByFolder) {
		oldLoc, ok := oldByFolder[folder]
		if !ok {
			continue
		}
		newLoc := newByFolder[folder]
		if oldLoc.Created != newLoc.Created || oldLoc.Modified != newLoc.Modified {
			changes = append(changes, Change{ChangeModified, fmt.Sprintf(
				"%s in %s - dates changed", key.filename, folder)})
		}
	}
	return changes
}

func flattenCatalog(catalog Catalog) map[entryKey]entryData {
	flat := make(map[entryKey]entryData)
	for _, group := range catalog {
		for _, file := range group.Files {
			flat[entryKey{group.Size, file.Filename}] = entryData{
				tok:       file.ToK,
				locations: file.Locations,
			}
		}
	}
	return flat
}

func sortedKeys(old, curr map[entryKey]entryData) []entryKey {
	seen := make(map[entryKey]bool, len(old)+len(curr))
	var keys []entryKey
	for key := range old {
		seen[key] = true
		keys = append(keys, key)
	}
	for key := range curr {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].size != keys[j].size {
			return keys[i].size < keys[j].size
		}
		return keys[i].filename < keys[j].filename
	})
	return keys
}

func locationsByFolder(locations []Location) map[string]Location {
	byFolder := make(map[string]Location, len(locations))
	for _, loc := range locations {
		byFolder[loc.Folder] = loc
	}
	return byFolder
}

func sortedFolders(byFolder map[string]Location) []string {
	folders := make([]string, 0, len(byFolder))
	for folder := range byFolder {
		folders = append(folders, folder)
	}
	sort.Strings(folders)
	return folders
}

func tokSuffix(tok string) string {
	if tok == "" {
		return ""
	}
	return fmt.Sprintf(" [ToK: %s]", tok)
}

// formatSize renders a byte count with thousands separators.
func formatSize(size int64) string {
	s := strconv.FormatInt(size, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	return string(out)
}
