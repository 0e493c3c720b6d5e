package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tokdex/internal/adapters/report"
	"tokdex/internal/application"
	"tokdex/internal/domain"
	"tokdex/internal/ports"
)

// PatternedScanResult contains the rows found and where the report landed.
type PatternedScanResult struct {
	Files      []domain.PatternedFile
	ReportPath string
}

// PatternedScanCommand scans for files that already carry a ToK prefix,
// reads their embedded titles, and writes the fixed-width report document.
type PatternedScanCommand struct {
	session    *application.Session
	scanner    ports.LibraryScanner
	ReportPath string // "" skips writing the report file
}

// NewPatternedScanCommand creates a new PatternedScanCommand.
func NewPatternedScanCommand(session *application.Session, scanner ports.LibraryScanner, reportPath string) *PatternedScanCommand {
	return &PatternedScanCommand{session: session, scanner: scanner, ReportPath: reportPath}
}

// Execute runs the patterned scan.
func (c *PatternedScanCommand) Execute(ctx context.Context) (*PatternedScanResult, error) {
	if err := c.session.BeginScan(); err != nil {
		return nil, err
	}
	defer c.session.EndScan()

	files, err := c.scanner.ScanPatterned()
	if err != nil {
		return nil, fmt.Errorf("scanning library: %w", err)
	}

	result := &PatternedScanResult{Files: files}
	if c.ReportPath != "" && len(files) > 0 {
		if err := os.MkdirAll(filepath.Dir(c.ReportPath), 0755); err != nil {
			return nil, fmt.Errorf("creating report folder: %w", err)
		}
		text := report.FormatPatterned(files)
		if err := os.WriteFile(c.ReportPath, []byte(text), 0644); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
		result.ReportPath = c.ReportPath
	}
	return result, nil
}
