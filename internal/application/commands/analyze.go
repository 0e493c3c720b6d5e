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

// AnalyzeResult contains the duplicate analysis plus its rendered reports.
type AnalyzeResult struct {
	Analysis   domain.AnalysisResult
	Summary    string
	ReportPath string
}

// AnalyzeCommand inspects the saved snapshot for duplicates that live both
// in a protected folder and elsewhere, producing a console summary and a
// detailed report file.
type AnalyzeCommand struct {
	store      ports.CatalogStore
	Protected  []string
	Ignored    []string
	ReportPath string // "" skips the detailed report file
}

// NewAnalyzeCommand creates a new AnalyzeCommand.
func NewAnalyzeCommand(store ports.CatalogStore, protected, ignored []string, reportPath string) *AnalyzeCommand {
	return &AnalyzeCommand{store: store, Protected: protected, Ignored: ignored, ReportPath: reportPath}
}

// Validate checks if the analysis request is valid.
func (c *AnalyzeCommand) Validate() error {
	if len(c.Protected) == 0 {
		return &application.ValidationError{
			Field:   "protected",
			Message: "at least one protected folder is required",
		}
	}
	return nil
}

// Execute runs the analysis over the previously saved snapshot.
func (c *AnalyzeCommand) Execute(ctx context.Context) (*AnalyzeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	catalog, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, fmt.Errorf("no snapshot found; run a scan first")
	}

	analysis := domain.AnalyzeDuplicates(catalog, c.Protected, c.Ignored)
	result := &AnalyzeResult{
		Analysis: analysis,
		Summary:  report.FormatAnalysis(analysis, c.Protected, c.Ignored),
	}

	if c.ReportPath != "" {
		detail := report.FormatAnalysisDetail(analysis, c.Protected, c.Ignored)
		if err := os.MkdirAll(filepath.Dir(c.ReportPath), 0755); err != nil {
			return nil, fmt.Errorf("creating report folder: %w", err)
		}
		if err := os.WriteFile(c.ReportPath, []byte(detail), 0644); err != nil {
			return nil, fmt.Errorf("writing analysis report: %w", err)
		}
		result.ReportPath = c.ReportPath
	}
	return result, nil
}
