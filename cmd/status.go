package cmd

import (
	"github.com/spf13/cobra"
)

// newStatusCmd creates the command that prints the game server status.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the game server status",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			status, err := application.Client.ServerStatus(cmd.Context())
			if err != nil {
				return err
			}

			printJSON(cmd.OutOrStdout(), status)
			return nil
		},
	}
}
