package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tokdex/internal/application/commands"
)

var bareCmd = &cobra.Command{
	Use:   "bare [folder]",
	Short: "List PDFs without a classification prefix",
	Long: `List the PDFs in a folder that carry no ToK prefix, most recently
modified first. The printed index numbers are what prefix and rename
take as their row argument.

Example:
  tokdex-cli bare
  tokdex-cli bare ~/Dropbox/coffeetable`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := bareFolder(args)
		if err != nil {
			return err
		}
		list := commands.NewListBareCommand(session, scanner, folder)
		index, err := list.Execute(context.Background())
		if err != nil {
			return err
		}
		if index.Len() == 0 {
			fmt.Println("No bare PDF files found.")
			return nil
		}
		for i, file := range index.Files() {
			fmt.Printf("%3d  %s  %s\n", i+1, file.ModifiedAt.Format("2006-01-02 15:04"), file.Name)
		}
		return nil
	},
}

func bareFolder(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return os.Getwd()
}

func init() {
	rootCmd.AddCommand(bareCmd)
}
