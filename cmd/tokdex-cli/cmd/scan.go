package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tokdex/internal/application/commands"
)

var scanAll bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the library, diff against the last snapshot, and save it",
	Long: `Walk the whole library, group every PDF by byte size, compare the
result with the previously saved snapshot, and persist the new snapshot
(with a timestamped backup of the old one) only when something changed.

Example:
  tokdex-cli scan
  tokdex-cli scan --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scan := commands.NewScanCommand(session, scanner, catalogStore, !scanAll)
		result, err := scan.Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Total PDFs found: %d\n", result.TotalFiles)
		fmt.Printf("Files with duplicate sizes: %d\n\n", result.DuplicateFiles)

		if !result.Diff.HasChanges {
			fmt.Println("No differences detected; snapshot not updated.")
			return nil
		}

		fmt.Printf("Found %d difference(s):\n\n", len(result.Diff.Changes))
		for _, change := range result.Diff.Changes {
			fmt.Printf("  %s\n", change)
		}
		if result.Save != nil {
			fmt.Printf("\nSnapshot saved to %s\n", result.Save.WrittenPath)
			if result.Save.BackupPath != "" {
				fmt.Printf("Previous snapshot backed up to %s\n", result.Save.BackupPath)
			}
			fmt.Printf("%d size groups, %d filenames, %d locations\n",
				result.Save.Stats.SizeGroups, result.Save.Stats.FileEntries, result.Save.Stats.Locations)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanAll, "all", false, "catalog every size group, not just duplicate sizes")
	rootCmd.AddCommand(scanCmd)
}
