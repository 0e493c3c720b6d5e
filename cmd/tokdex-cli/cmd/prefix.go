package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tokdex/internal/application/commands"
)

var prefixFolder string

var prefixCmd = &cobra.Command{
	Use:   "prefix <index> <code>",
	Short: "Apply a ToK code to a bare file by its listing index",
	Long: `Rename the bare file shown at the given index so its filename starts
with the ToK code in spaced prefix form. The index numbers come from the
most recent listing of the folder.

Example:
  tokdex-cli prefix 1 AB
  tokdex-cli prefix --folder ~/Dropbox/coffeetable 3 Q2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		displayIndex, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}
		if err := loadBareListing(prefixFolder); err != nil {
			return err
		}
		apply := commands.NewApplyPrefixCommand(session, renamer, displayIndex, args[1])
		result, err := apply.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

// loadBareListing rebuilds the display index from the folder's current
// state, so a CLI invocation always renames what a fresh listing shows.
func loadBareListing(folder string) error {
	folderPath, err := bareFolder(sliceOf(folder))
	if err != nil {
		return err
	}
	list := commands.NewListBareCommand(session, scanner, folderPath)
	_, err = list.Execute(context.Background())
	return err
}

func sliceOf(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func init() {
	prefixCmd.Flags().StringVarP(&prefixFolder, "folder", "f", "", "folder holding the bare files (default current directory)")
	rootCmd.AddCommand(prefixCmd)
}
