package report

import (
	"fmt"
	"strings"

	"tokdex/internal/domain"
)

const rule = "================================================================================"

// FormatAnalysis renders the console summary of a duplicate analysis:
// protected and ignored folders, totals, per-folder counts, and worked
// examples for the heaviest folders.
func FormatAnalysis(result domain.AnalysisResult, protected, ignored []string) string {
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	sb.WriteString("DUPLICATE PDF ANALYSIS REPORT\n")
	sb.WriteString(rule + "\n\n")

	sb.WriteString("Protected folders (do not delete from these):\n")
	for _, folder := range protected {
		fmt.Fprintf(&sb, "  - %s\n", folder)
	}
	sb.WriteString("\nIgnored folders (not included in analysis):\n")
	for _, folder := range ignored {
		fmt.Fprintf(&sb, "  - %s\n", folder)
	}

	fmt.Fprintf(&sb, "\nFiles that exist in protected folders: %d\n", result.FilesInProtected)
	fmt.Fprintf(&sb, "Total deletable duplicates in other folders: %d\n\n", result.DeletableDuplicates)

	sb.WriteString("Folders with deletable duplicates (sorted by count):\n\n")
	fmt.Fprintf(&sb, "%-8s %s\n", "Count", "Folder")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, folder := range result.Folders {
		fmt.Fprintf(&sb, "%-8d %s\n", len(folder.Files), folder.Folder)
	}

	top := result.Folders
	if len(top) > 5 {
		top = top[:5]
	}
	if len(top) > 0 {
		sb.WriteString("\nTop folders with most deletable duplicates:\n")
		for i, folder := range top {
			fmt.Fprintf(&sb, "\n%d. %s\n   Deletable files: %d\n", i+1, folder.Folder, len(folder.Files))
			examples := folder.Files
			if len(examples) > 5 {
				examples = examples[:5]
			}
			for _, file := range examples {
				fmt.Fprintf(&sb, "     - %s\n       (also in: %s)\n", file.Filename, file.ProtectedLocations[0])
			}
			if len(folder.Files) > 5 {
				fmt.Fprintf(&sb, "     ... and %d more\n", len(folder.Files)-5)
			}
		}
	}
	sb.WriteString("\n" + rule + "\n")
	return sb.String()
}

// FormatAnalysisDetail renders the full per-folder listing written to the
// analysis report file.
func FormatAnalysisDetail(result domain.AnalysisResult, protected, ignored []string) string {
	var sb strings.Builder

	sb.WriteString("DETAILED DUPLICATE PDF ANALYSIS REPORT\n")
	sb.WriteString(rule + "\n\n")

	sb.WriteString("Protected folders (do not delete from these):\n")
	for _, folder := range protected {
		fmt.Fprintf(&sb, "  - %s\n", folder)
	}
	sb.WriteString("\nIgnored folders (not included in analysis):\n")
	for _, folder := range ignored {
		fmt.Fprintf(&sb, "  - %s\n", folder)
	}

	fmt.Fprintf(&sb, "\nTotal files in protected folders: %d\n", result.FilesInProtected)
	fmt.Fprintf(&sb, "Total deletable duplicates: %d\n\n", result.DeletableDuplicates)
	sb.WriteString(rule + "\n")

	for _, folder := range result.Folders {
		fmt.Fprintf(&sb, "\nFolder: %s\nDeletable files: %d\n", folder.Folder, len(folder.Files))
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, file := range folder.Files {
			fmt.Fprintf(&sb, "  %s\n", file.Filename)
			fmt.Fprintf(&sb, "    Size: %d bytes\n", file.Size)
			fmt.Fprintf(&sb, "    Also in protected folder(s): %s\n", strings.Join(file.ProtectedLocations, ", "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
