package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tokdex/internal/application/commands"
)

var tokCmd = &cobra.Command{
	Use:   "tok",
	Short: "Manage classification entries",
}

var tokAddCmd = &cobra.Command{
	Use:   "add <code> <label>",
	Short: "Add a classification entry",
	Long: `Add a new entry to the classification document. The prior document is
backed up with a timestamp before the new list is written.

Example:
  tokdex-cli tok add AB "Annual budgets"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		add := commands.NewTokAddCommand(tokStore, args[0], args[1])
		result, err := add.Execute(context.Background())
		if err != nil {
			return err
		}
		printTokResult(result)
		return nil
	},
}

var tokEditCmd = &cobra.Command{
	Use:   "edit <code> <new code> <new label>",
	Short: "Edit a classification entry, addressed by its current code",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := commands.NewTokUpdateCommand(tokStore, args[0], args[1], args[2])
		result, err := update.Execute(context.Background())
		if err != nil {
			return err
		}
		printTokResult(result)
		return nil
	},
}

var tokDeleteCmd = &cobra.Command{
	Use:   "delete <code>",
	Short: "Delete a classification entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		del := commands.NewTokDeleteCommand(tokStore, args[0])
		result, err := del.Execute(context.Background())
		if err != nil {
			return err
		}
		printTokResult(result)
		return nil
	},
}

func printTokResult(result *commands.TokResult) {
	fmt.Println(result.Message)
	if result.BackupName != "" {
		fmt.Printf("Previous document backed up as %s\n", result.BackupName)
	}
}

func init() {
	tokCmd.AddCommand(tokAddCmd)
	tokCmd.AddCommand(tokEditCmd)
	tokCmd.AddCommand(tokDeleteCmd)
	rootCmd.AddCommand(tokCmd)
}
