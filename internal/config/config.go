package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultLibraryRoot is the scanned tree when TOKDEX_LIBRARY is unset.
	DefaultLibraryRoot = "~/Dropbox"

	// CatalogFileName is the persisted snapshot document.
	CatalogFileName = "pdf-files-by-size.json"

	// TokFileName is the persisted classification document.
	TokFileName = "pdf_manager_tok_init.json"

	// ReportFileName is the patterned-scan report document.
	ReportFileName = "pdf-document.txt"

	// AnalysisFileName is the detailed duplicate-analysis report.
	AnalysisFileName = "duplicate-analysis.txt"
)

// DefaultExcludes are directory names pruned from every scan.
var DefaultExcludes = []string{"RAG"}

// LibraryRoot returns the library root from TOKDEX_LIBRARY, falling back to
// DefaultLibraryRoot.
func LibraryRoot() string {
	if env := os.Getenv("TOKDEX_LIBRARY"); env != "" {
		return env
	}
	return DefaultLibraryRoot
}

// DataDir returns the folder holding the catalog and classification
// documents: TOKDEX_DATA, or <library>/pdfmanager.
func DataDir() string {
	if env := os.Getenv("TOKDEX_DATA"); env != "" {
		return env
	}
	return filepath.Join(ExpandHome(LibraryRoot()), "pdfmanager")
}

// Excludes returns the exclude patterns from TOKDEX_EXCLUDE
// (comma-separated), falling back to DefaultExcludes.
func Excludes() []string {
	env := os.Getenv("TOKDEX_EXCLUDE")
	if env == "" {
		return DefaultExcludes
	}
	var patterns []string
	for _, p := range strings.Split(env, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// CatalogPath returns the full path of the snapshot document.
func CatalogPath() string {
	return filepath.Join(DataDir(), CatalogFileName)
}

// TokPath returns the full path of the classification document.
func TokPath() string {
	return filepath.Join(DataDir(), TokFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
