package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tokdex/internal/adapters/filesystem"
	"tokdex/internal/adapters/jsonstore"
	"tokdex/internal/adapters/pdfinfo"
	"tokdex/internal/application"
	"tokdex/internal/config"
)

var (
	libraryPath string
	dataDir     string
	excludes    []string

	session      *application.Session
	scanner      *filesystem.Scanner
	renamer      *filesystem.Renamer
	catalogStore *jsonstore.CatalogStore
	tokStore     *jsonstore.TokStore
)

var rootCmd = &cobra.Command{
	Use:   "tokdex-cli",
	Short: "CLI for cataloging a PDF library with ToK classification prefixes",
	Long: `tokdex-cli catalogs a tree of PDF files, finds size-based duplicates
across folders, and maintains the ToK classification codes embedded as
spaced prefixes at the start of filenames.

It provides commands to scan the library, diff snapshots, list and
classify bare files, and edit the classification tree.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		session = application.NewSession()
		scanner = filesystem.NewScanner(libraryPath, excludes, pdfinfo.ReadTitle)
		renamer = filesystem.NewRenamer()
		catalogStore = jsonstore.NewCatalogStore(filepath.Join(dataDir, config.CatalogFileName))
		tokStore = jsonstore.NewTokStore(filepath.Join(dataDir, config.TokFileName))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&libraryPath, "library", "l", config.LibraryRoot(), "path to the PDF library root")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", config.DataDir(), "folder holding the catalog and classification documents")
	rootCmd.PersistentFlags().StringSliceVarP(&excludes, "exclude", "x", config.Excludes(), "directory name patterns pruned from scans")
}
