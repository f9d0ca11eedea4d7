package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata"
)

var showRoot string

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show the title and tags of one note",
	Long: `Show one note. The tree is scanned so tags contributed by symlinks are
included; if the file is not part of the collection the reason is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]

		collection, err := scanTree(cmd, showRoot)
		if err != nil {
			return err
		}

		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		canonical, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", file, err)
		}

		note, ok := collection.Get(canonical)
		if !ok {
			// Explain why the file was left out.
			root, rerr := resolveRoot(showRoot)
			if rerr != nil {
				return rerr
			}
			if _, err := strata.NoteFromFile(file, root); err != nil {
				return fmt.Errorf("not a note: %w", err)
			}
			return fmt.Errorf("%s is not part of the tree at %s", file, root)
		}

		tags := make([]string, len(note.Tags))
		for i, t := range note.Tags {
			tags[i] = displayTag(t)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "title: %s\n", note.Title)
		fmt.Fprintf(out, "path:  %s\n", note.Path)
		fmt.Fprintf(out, "tags:  %s\n", strings.Join(tags, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showRoot, "root", "", "Tree root (default: nearest .strata.yaml or .git, else working directory)")
}
