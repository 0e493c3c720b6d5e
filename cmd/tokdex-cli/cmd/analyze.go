package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tokdex/internal/application/commands"
	"tokdex/internal/config"
)

var (
	analyzeProtected []string
	analyzeIgnored   []string
	analyzeOut       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Find duplicates that are safe to delete",
	Long: `Analyze the saved snapshot for files that exist both in a protected
folder and elsewhere. Copies outside the protected folders are deletable
duplicates; the detailed listing is written to a report file.

Example:
  tokdex-cli analyze -p documents -p 1hugefiles -i pdfmanager`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := analyzeOut
		if out == "" {
			out = filepath.Join(dataDir, config.AnalysisFileName)
		}
		analyze := commands.NewAnalyzeCommand(catalogStore, analyzeProtected, analyzeIgnored, out)
		result, err := analyze.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(result.Summary)
		fmt.Printf("\nDetailed report saved to: %s\n", result.ReportPath)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringSliceVarP(&analyzeProtected, "protected", "p", nil, "folder names that must keep their copies")
	analyzeCmd.Flags().StringSliceVarP(&analyzeIgnored, "ignored", "i", nil, "folder names excluded from the analysis")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "report file path (default <data>/"+config.AnalysisFileName+")")
	rootCmd.AddCommand(analyzeCmd)
}
