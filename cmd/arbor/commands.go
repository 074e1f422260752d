package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the registered commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		cmds := app.Runtime.Commands()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(cmds)
		}
		for _, c := range cmds {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", c.ID, c.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().Bool("json", false, "Print as JSON")
}
