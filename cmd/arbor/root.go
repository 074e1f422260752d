package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/sanitize"
	"github.com/spf13/cobra"
)

var (
	v      = cli.NewViper()
	cfg    cli.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor is a plugin host built on tagged objects, behaviors and commands",
	Long: `Arbor hosts plugins that register object templates, behaviors and commands.
Commands are invoked by id from a palette; objects they open are shown in tabs.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = cli.LoadConfig(v); err != nil {
			return err
		}
		if logger, err = cli.NewLogger(cfg, os.Stderr); err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(cli.KeyConfig, "", "Config file (default ./arbor.yaml)")
	flags.String(cli.KeyLogLevel, "warn", "Log level: debug, info, warn or error")
	flags.String(cli.KeyLogFormat, "text", "Log format: text or json")
	flags.StringSliceP(cli.KeyManifest, "m", nil, "Plugin manifest to load (repeatable; YAML, JSON or TOML)")
	flags.Bool(cli.KeyMetrics, false, "Dump metrics to stderr on exit")
	flags.String(cli.KeyStyle, "", "Glamour style for views (default: detect terminal)")
	flags.Int(cli.KeyMaxInput, sanitize.DefaultMaxInputSize, "Maximum palette line size in bytes")
	flags.Bool(cli.KeyNoBanner, false, "Do not print the banner when the palette opens")

	for _, key := range []string{cli.KeyConfig, cli.KeyLogLevel, cli.KeyLogFormat, cli.KeyManifest, cli.KeyMetrics, cli.KeyStyle, cli.KeyMaxInput, cli.KeyNoBanner} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
}

// newApp builds the host from the loaded config.
func newApp() (*cli.App, error) {
	return cli.NewApp(cfg, logger)
}

// finish dumps metrics if asked to.
func finish(app *cli.App) {
	if !cfg.Metrics {
		return
	}
	if err := app.WriteMetrics(os.Stderr); err != nil {
		logger.Warn("metrics dump failed", "err", err)
	}
}
