package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata"
)

var (
	verbose    bool
	configFile string
	ignore     []string
	workers    int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "Index a tree of plain-text notes by title and directory tags",
	Long: `strata scans a directory of notes, reads each note's title from its
first line (underlined with hyphens) and tags it with the directories it lives
in. Symlinks to a note add the symlink's directory as an extra tag.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: <root>/"+strata.ConfigFileName+")")
	rootCmd.PersistentFlags().StringSliceVar(&ignore, "ignore", nil, "Glob of root-relative paths to skip (repeatable)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Concurrent file reads (default: number of CPUs)")
}

// resolveRoot picks the scan root: the explicit argument, else the nearest
// enclosing tree root, else the working directory when no tree is marked.
func resolveRoot(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error getting working directory: %w", err)
	}
	root, err := strata.FindRoot(wd)
	switch {
	case err == nil:
		return root, nil
	case errors.Is(err, strata.ErrNoRoot):
		slog.Debug("no tree root found, scanning working directory", "dir", wd)
		return wd, nil
	default:
		return "", fmt.Errorf("error locating tree root: %w", err)
	}
}

// scanOptions maps the global flags onto scan options.
func scanOptions(extra ...strata.Option) []strata.Option {
	opts := []strata.Option{strata.WithLogger(slog.Default())}
	if configFile != "" {
		opts = append(opts, strata.WithConfigFile(configFile))
	}
	if len(ignore) > 0 {
		opts = append(opts, strata.WithIgnore(ignore...))
	}
	if workers > 0 {
		opts = append(opts, strata.WithWorkers(workers))
	}
	return append(opts, extra...)
}

// scanTree resolves the root and runs one scan.
func scanTree(cmd *cobra.Command, explicit string, extra ...strata.Option) (*strata.Collection, error) {
	root, err := resolveRoot(explicit)
	if err != nil {
		return nil, err
	}
	notes, err := strata.Scan(cmd.Context(), root, scanOptions(extra...)...)
	if strata.IsRootError(err) {
		return nil, fmt.Errorf("cannot scan %s: not a readable directory: %w", root, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", root, err)
	}
	return notes, nil
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func displayTag(tag string) string {
	if tag == "" {
		return "."
	}
	return tag
}
