package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive command palette",
	Long:  `Reads command ids from stdin, one per line, and renders the focused tab after each one. Type :help for shell commands.`,
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

		interactive := cli.IsTerminal(os.Stdin)
		if interactive && !cfg.NoBanner {
			tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(arbor.Version))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		shell := cli.NewShell(app, cmd.InOrStdin(), cmd.OutOrStdout(),
			cli.WithRenderer(render),
			cli.WithPrompt(interactive),
			cli.WithMaxInputSize(cfg.MaxInput),
		)
		return shell.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.RunE = runCmd.RunE
}
