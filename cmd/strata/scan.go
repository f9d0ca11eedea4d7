package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata"
	"github.com/aretw0/strata/pkg/export"
)

var (
	scanJSON      bool
	scanYAML      bool
	scanTag       string
	scanOut       string
	scanSorted    bool
	reportSkipped bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "Scan a note tree and list its notes",
	Long: `Scan a note tree and list every note with its title and tags.
Without a root argument the nearest directory holding .strata.yaml or .git is
used, falling back to the working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var extra []strata.Option
		if reportSkipped {
			stderr := cmd.ErrOrStderr()
			extra = append(extra, strata.WithSkipHandler(func(path string, err error) {
				fmt.Fprintf(stderr, "skipped %s: %v\n", path, err)
			}))
		}

		collection, err := scanTree(cmd, firstArg(args), extra...)
		if err != nil {
			return err
		}

		notes := collection.Notes()
		if scanSorted {
			notes = collection.Sorted()
		}
		if scanTag != "" {
			notes = filterTag(notes, scanTag)
		}

		format, err := scanFormat()
		if err != nil {
			return err
		}
		idx := export.NewIndex(collection.Root(), notes)

		if scanOut != "" {
			return writeIndex(cmd, idx, format)
		}
		return export.Encode(cmd.OutOrStdout(), idx, format)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output in JSON format")
	scanCmd.Flags().BoolVar(&scanYAML, "yaml", false, "Output in YAML format")
	scanCmd.Flags().StringVar(&scanTag, "tag", "", "Only list notes carrying this tag (use . for the root)")
	scanCmd.Flags().StringVarP(&scanOut, "out", "o", "", "Write the index to a file (format from extension unless --json/--yaml)")
	scanCmd.Flags().BoolVar(&scanSorted, "sorted", false, "Order notes by path instead of discovery order")
	scanCmd.Flags().BoolVar(&reportSkipped, "report-skipped", false, "Print every skipped path and the reason to stderr")
	scanCmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

func scanFormat() (export.Format, error) {
	switch {
	case scanJSON:
		return export.FormatJSON, nil
	case scanYAML:
		return export.FormatYAML, nil
	case scanOut != "":
		return export.ParseFormat(filepath.Ext(scanOut))
	}
	return export.FormatText, nil
}

func writeIndex(cmd *cobra.Command, idx export.Index, format export.Format) error {
	if err := export.WriteIndex(scanOut, idx, format); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d notes to %s\n", len(idx.Notes), scanOut)
	return nil
}

func filterTag(notes []strata.Note, tag string) []strata.Note {
	if tag == "." {
		tag = ""
	}
	var filtered []strata.Note
	for _, n := range notes {
		if n.HasTag(tag) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
