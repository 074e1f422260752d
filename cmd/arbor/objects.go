package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/spf13/cobra"
)

var objectsCmd = &cobra.Command{
	Use:   "objects [command-id...]",
	Short: "Invoke commands, then print the live objects as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer finish(app)

		for _, id := range args {
			if err := app.Runtime.Invoke(cmd.Context(), id); err != nil {
				return fmt.Errorf("invoke %s: %w", id, err)
			}
		}

		infos := []domain.ObjectInfo{}
		for _, o := range app.Runtime.Objects() {
			infos = append(infos, o.Info())
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	},
}

func init() {
	rootCmd.AddCommand(objectsCmd)
}
