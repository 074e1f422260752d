package main

import (
	"fmt"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the registered templates, behaviors and commands as a Mermaid diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		catalog := graph.Catalog{
			Behaviors: app.Runtime.Behaviors(),
			Commands:  app.Runtime.Commands(),
		}
		for _, id := range app.Runtime.Templates() {
			tpl, err := app.Runtime.Template(id)
			if err != nil {
				return err
			}
			catalog.Templates = append(catalog.Templates, tpl)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(catalog))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
