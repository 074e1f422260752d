package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/aretw0/arbor"
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the arbor build and platform",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := strings.TrimSpace(arbor.Version)
		if versionShort {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "arbor %s (%s, %s/%s)\n",
			version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return err
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
	rootCmd.AddCommand(versionCmd)
}
