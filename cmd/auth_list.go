package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newAuthListCmd creates the command that lists stored authorizations.
func newAuthListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List authorized characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			characters := application.Store.Characters()
			if len(characters) == 0 {
				fmt.Fprintln(out, "No authorized characters.")
				return nil
			}

			for _, characterID := range characters {
				token, ok := application.Store.Get(characterID)
				if !ok {
					continue
				}
				status := "VALID"
				if application.Store.Expired(token) {
					status = "EXPIRED"
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", characterID, token.CharacterName, status)
			}
			return nil
		},
	}
}
