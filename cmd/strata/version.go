package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/strata"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of strata",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := strings.TrimSpace(strata.Version)
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "strata %s (%s %s/%s)\n", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}
