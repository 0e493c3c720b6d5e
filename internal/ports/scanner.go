package ports

import "tokdex/internal/domain"

// LibraryScanner walks the PDF library and produces raw per-file records.
type LibraryScanner interface {
	// Scan visits every PDF under the library root, pruning excluded
	// directories. Per-file errors are logged and skipped, never fatal.
	// Records come back in traversal order; callers impose ordering.
	Scan() ([]domain.FileRecord, error)

	// ScanPatterned restricts the walk to files carrying a recognized ToK
	// prefix and reads each document's embedded title metadata. A document
	// that cannot be parsed yields an error marker string as its title.
	ScanPatterned() ([]domain.PatternedFile, error)

	// ListBare lists the PDFs in one folder that carry no recognized
	// prefix, ordered by modification time descending.
	ListBare(folder string) (*domain.BareIndex, error)
}
