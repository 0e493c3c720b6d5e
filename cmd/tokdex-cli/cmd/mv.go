package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tokdex/internal/application/commands"
)

var mvFolder string

var mvCmd = &cobra.Command{
	Use:   "mv <index> <new name>",
	Short: "Rename a bare file by its listing index",
	Long: `Rename the bare file shown at the given index to an exact new
filename, refusing to overwrite an existing file.

Example:
  tokdex-cli mv 2 "quarterly statement.pdf"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		displayIndex, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}
		if err := loadBareListing(mvFolder); err != nil {
			return err
		}
		rename := commands.NewRenameCommand(session, renamer, displayIndex, args[1])
		result, err := rename.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	mvCmd.Flags().StringVarP(&mvFolder, "folder", "f", "", "folder holding the bare files (default current directory)")
	rootCmd.AddCommand(mvCmd)
}
