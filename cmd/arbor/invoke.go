package main

import (
	"fmt"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <command-id>...",
	Short: "Invoke commands in order and print the focused view",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer finish(app)

		render, err := cli.NewRenderer(cfg, os.Stdout)
		if err != nil {
			return err
		}

		shell := cli.NewShell(app, nil, cmd.OutOrStdout(), cli.WithRenderer(render))
		for _, id := range args {
			if err := shell.Invoke(cmd.Context(), id); err != nil {
				return fmt.Errorf("invoke %s: %w", id, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}
