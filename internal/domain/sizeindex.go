package domain

import (
	"sort"
	"strings"
)

// SizeIndex groups scanned records by exact byte size, the substrate for
// duplicate detection.
type SizeIndex map[int64][]FileRecord

// BuildIndex groups records by size, preserving discovery order within each
// size bucket.
func BuildIndex(records []FileRecord) SizeIndex {
	index := make(SizeIndex)
	for _, rec := range records {
		index[rec.Size] = append(index[rec.Size], rec)
	}
	return index
}

// ToCatalog converts a size index into the persisted catalog form: sizes
// ascending, file entries grouped by base filename and sorted by name, codes
// accumulated as a sorted semicolon-joined set, locations in discovery
// order. With duplicatesOnly, sizes holding a single record are dropped.
func ToCatalog(index SizeIndex, duplicatesOnly bool) Catalog {
	sizes := make([]int64, 0, len(index))
	for size, records := range index {
		if duplicatesOnly && len(records) < 2 {
			continue
		}
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	catalog := make(Catalog, 0, len(sizes))
	for _, size := range sizes {
		type nameGroup struct {
			codes     map[string]bool
			locations []Location
		}
		byName := make(map[string]*nameGroup)
		var names []string

		for _, rec := range index[size] {
			group, seen := byName[rec.BaseName]
			if !seen {
				group = &nameGroup{codes: make(map[string]bool)}
				byName[rec.BaseName] = group
				names = append(names, rec.BaseName)
			}
			if rec.Code != "" {
				group.codes[rec.Code] = true
			}
			group.locations = append(group.locations, Location{
				Folder:   rec.Folder,
				Created:  rec.CreatedAt.Format(TimeFormat),
				Modified: rec.ModifiedAt.Format(TimeFormat),
			})
		}

		sort.Strings(names)
		files := make([]FileEntry, 0, len(names))
		for _, name := range names {
			group := byName[name]
			files = append(files, FileEntry{
				Filename:  name,
				ToK:       joinCodes(group.codes),
				Locations: group.locations,
			})
		}
		catalog = append(catalog, SizeGroup{Size: size, Files: files})
	}
	return catalog
}

func joinCodes(codes map[string]bool) string {
	if len(codes) == 0 {
		return ""
	}
	sorted := make([]string, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ";")
}
