package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tokdex/internal/application/commands"
	"tokdex/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the classification tree",
	Long: `Display the classification codes as a tree, reconstructed from the
flat entry list by prefix parentage.

Example:
  tokdex-cli tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		build := commands.NewTokTreeCommand(tokStore)
		roots, err := build.Execute(context.Background())
		if err != nil {
			return err
		}
		for _, root := range roots {
			printTokTree(root)
		}
		return nil
	},
}

func printTokTree(node *domain.TokNode) {
	indent := strings.Repeat("  ", node.Depth())
	fmt.Printf("%s%s %s\n", indent, node.Code, node.Label)
	for _, child := range node.Children {
		printTokTree(child)
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
