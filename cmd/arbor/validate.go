package main

import (
	"fmt"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/manifest"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>...",
	Short: "Check plugin manifests",
	Long:  `Parses each manifest and registers it on a scratch runtime, reporting the first problem found.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			m, err := manifest.Load(path)
			if err != nil {
				return err
			}
			rt := arbor.New(arbor.WithLogger(logger))
			if err := m.Apply(rt, memory.NewTabs(rt)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d behaviors, %d templates, %d commands)\n",
				path, len(m.Behaviors), len(m.Templates), len(m.Commands))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
