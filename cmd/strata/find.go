package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata/pkg/export"
)

var (
	findRoot  string
	findLimit int
)

var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Fuzzy search note titles",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := scanTree(cmd, findRoot)
		if err != nil {
			return err
		}

		matches := collection.Find(strings.Join(args, " "))
		if findLimit > 0 && len(matches) > findLimit {
			matches = matches[:findLimit]
		}
		if len(matches) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No notes found.")
			return nil
		}
		return export.Encode(cmd.OutOrStdout(), export.NewIndex(collection.Root(), matches), export.FormatText)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVar(&findRoot, "root", "", "Tree root (default: nearest .strata.yaml or .git, else working directory)")
	findCmd.Flags().IntVarP(&findLimit, "limit", "n", 10, "Maximum number of results (0 for all)")
}
