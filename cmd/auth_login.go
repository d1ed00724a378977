package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newAuthLoginCmd creates the command that runs the authorization code flow
// for a new character.
func newAuthLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize a character via the EVE Online SSO",
		Long: `Prints the SSO authorization URL to open in a browser. After
approving the application, paste the full callback URL back here to
complete the flow and store the character's tokens.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}
			if err := application.Config.ValidateAuth(); err != nil {
				return err
			}

			authorizeURL, state, err := application.Authenticator.AuthorizationURL("")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Open the following URL in a browser and authorize the application:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %s\n", authorizeURL)
			fmt.Fprintln(out)
			fmt.Fprint(out, "Paste the full callback URL here: ")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read callback URL: %w", err)
				}
				return fmt.Errorf("no callback URL provided")
			}
			callbackURL := strings.TrimSpace(scanner.Text())

			token, err := application.Authenticator.CompleteAuthorization(cmd.Context(), callbackURL, state)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Authorized %s (character %s)\n", token.CharacterName, token.CharacterID)
			return nil
		},
	}
}
