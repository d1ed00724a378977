package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newAuthRevokeCmd creates the command that removes a stored authorization.
func newAuthRevokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <character-id>",
		Short: "Remove a character's stored tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			characterID := args[0]
			out := cmd.OutOrStdout()
			if application.Authenticator.Revoke(characterID) {
				fmt.Fprintf(out, "Removed tokens for character %s\n", characterID)
			} else {
				fmt.Fprintf(out, "No stored tokens for character %s\n", characterID)
			}
			return nil
		},
	}
}
