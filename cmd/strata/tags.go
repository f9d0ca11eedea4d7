package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [root]",
	Short: "List every tag with the number of notes carrying it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := scanTree(cmd, firstArg(args))
		if err != nil {
			return err
		}

		counts := collection.TagCounts()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, tag := range collection.Tags() {
			fmt.Fprintf(tw, "%d\t%s\n", counts[tag], displayTag(tag))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
