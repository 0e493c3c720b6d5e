package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tokdex/internal/adapters/report"
	"tokdex/internal/application/commands"
	"tokdex/internal/config"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Scan prefixed files and write the fixed-width report",
	Long: `Scan the library for files that already carry a ToK prefix, read each
document's embedded title, and write a fixed-width table of pattern,
filename, folder, and internal title.

Example:
  tokdex-cli report
  tokdex-cli report -o /tmp/pdf-document.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := reportOut
		if out == "" {
			out = filepath.Join(dataDir, config.ReportFileName)
		}
		patterned := commands.NewPatternedScanCommand(session, scanner, out)
		result, err := patterned.Execute(context.Background())
		if err != nil {
			return err
		}
		if len(result.Files) == 0 {
			fmt.Println("No PDFs matching the pattern were found.")
			return nil
		}
		fmt.Print(report.FormatPatterned(result.Files))
		fmt.Printf("\nFound %d prefixed PDFs; report written to %s\n", len(result.Files), result.ReportPath)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "report file path (default <data>/"+config.ReportFileName+")")
	rootCmd.AddCommand(reportCmd)
}
