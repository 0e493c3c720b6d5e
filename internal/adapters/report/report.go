package report

import (
	"fmt"
	"sort"
	"strings"

	"tokdex/internal/domain"
)

// Minimum column widths for the patterned-scan table.
const (
	minPatternWidth  = 10
	minFilenameWidth = 20
	minFolderWidth   = 20
)

// FormatPatterned renders the patterned-scan results as a fixed-width text
// table with columns Pattern, Filename, Folder, Internal Title. Column
// widths are the longest value plus two, floored at the minimums; rows are
// sorted by (pattern, filename).
func FormatPatterned(results []domain.PatternedFile) string {
	rows := make([]domain.PatternedFile, len(results))
	copy(rows, results)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Code != rows[j].Code {
			return rows[i].Code < rows[j].Code
		}
		return rows[i].BaseName < rows[j].BaseName
	})

	patternWidth := minPatternWidth
	filenameWidth := minFilenameWidth
	folderWidth := minFolderWidth
	for _, row := range rows {
		patternWidth = max(patternWidth, len(pattern(row.Code))+2)
		filenameWidth = max(filenameWidth, len(row.BaseName)+2)
		folderWidth = max(folderWidth, len(row.Folder)+2)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s %-*s %-*s Internal Title\n",
		patternWidth, "Pattern", filenameWidth, "Filename", folderWidth, "Folder")
	sb.WriteString(strings.Repeat("-", patternWidth+filenameWidth+folderWidth+50))
	sb.WriteByte('\n')

	for _, row := range rows {
		fmt.Fprintf(&sb, "%-*s %-*s %-*s %s\n",
			patternWidth, pattern(row.Code), filenameWidth, row.BaseName, folderWidth, row.Folder, row.Title)
	}
	return sb.String()
}

// pattern renders a code the way it appears in filenames, without the
// trailing space.
func pattern(code string) string {
	return strings.TrimRight(domain.FormatPrefix(code), " ")
}
