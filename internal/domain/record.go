package domain

import "time"

// TimeFormat is the timestamp layout used in the persisted catalog.
const TimeFormat = "2006-01-02 15:04:05"

// RootFolder is the literal folder token for files sitting directly in the
// library root.
const RootFolder = "[root]"

// FileRecord is one scanned file. BaseName has any recognized ToK prefix
// stripped; Code is empty for bare files. Folder is relative to the scan
// root ([root] for the root itself). Records are produced fresh on every
// scan and only persist aggregated into size groups.
type FileRecord struct {
	BaseName   string
	Code       string
	Folder     string
	Size       int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Location is one place a file entry was found.
type Location struct {
	Folder   string `json:"folder"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
}

// FileEntry aggregates all locations of one base filename within a size
// group. ToK is the semicolon-joined sorted set of codes seen across the
// locations, "" when none carried a prefix.
type FileEntry struct {
	Filename  string     `json:"filename"`
	ToK       string     `json:"ToK"`
	Locations []Location `json:"locations"`
}

// SizeGroup holds every file entry sharing one exact byte size.
type SizeGroup struct {
	Size  int64       `json:"size"`
	Files []FileEntry `json:"files"`
}

// Catalog is the persisted snapshot: size groups sorted by size ascending.
type Catalog []SizeGroup

// PatternedFile is one result of the narrow prefixed-only scan, including
// the document's embedded title metadata.
type PatternedFile struct {
	Code     string
	BaseName string
	Folder   string
	Title    string
}
