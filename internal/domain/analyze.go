package domain

import (
	"sort"
	"strings"
)

// DeletableFile is one duplicate that may be removed from a non-protected
// folder because an identical-size copy lives in a protected folder.
type DeletableFile struct {
	Filename           string
	Size               int64
	ProtectedLocations []string
}

// FolderReport lists the deletable duplicates found in one folder.
type FolderReport struct {
	Folder string
	Files  []DeletableFile
}

// AnalysisResult summarizes a duplicate analysis over a catalog.
type AnalysisResult struct {
	Folders             []FolderReport
	FilesInProtected    int
	DeletableDuplicates int
}

// folderMatches reports whether the given folder name appears as a path
// segment of a relative folder path, so a protected folder covers its
// subfolders too.
func folderMatches(folder, name string) bool {
	for _, segment := range strings.Split(folder, "/") {
		if segment == name {
			return true
		}
	}
	return false
}

func matchesAny(folder string, names []string) bool {
	for _, name := range names {
		if folderMatches(folder, name) {
			return true
		}
	}
	return false
}

// AnalyzeDuplicates finds catalog entries that exist both in a protected
// folder and elsewhere. Ignored folders are excluded from consideration
// entirely. Folders come out sorted by deletable count descending, then by
// name; the catalogued location order is preserved within a folder.
func AnalyzeDuplicates(catalog Catalog, protected, ignored []string) AnalysisResult {
	byFolder := make(map[string][]DeletableFile)

	var result AnalysisResult
	for _, group := range catalog {
		for _, file := range group.Files {
			var protectedLocs, otherLocs []string
			for _, loc := range file.Locations {
				if matchesAny(loc.Folder, ignored) {
					continue
				}
				if matchesAny(loc.Folder, protected) {
					protectedLocs = append(protectedLocs, loc.Folder)
				} else {
					otherLocs = append(otherLocs, loc.Folder)
				}
			}
			if len(protectedLocs) == 0 || len(otherLocs) == 0 {
				continue
			}
			result.FilesInProtected++
			result.DeletableDuplicates += len(otherLocs)
			for _, folder := range otherLocs {
				byFolder[folder] = append(byFolder[folder], DeletableFile{
					Filename:           file.Filename,
					Size:               group.Size,
					ProtectedLocations: protectedLocs,
				})
			}
		}
	}

	for folder, files := range byFolder {
		result.Folders = append(result.Folders, FolderReport{Folder: folder, Files: files})
	}
	sort.Slice(result.Folders, func(i, j int) bool {
		if len(result.Folders[i].Files) != len(result.Folders[j].Files) {
			return len(result.Folders[i].Files) > len(result.Folders[j].Files)
		}
		return result.Folders[i].Folder < result.Folders[j].Folder
	})
	return result
}
