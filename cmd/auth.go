package cmd

import (
	"github.com/spf13/cobra"
)

// newAuthCmd creates the parent command for authentication management.
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage character authorizations",
		Long: `Authorize characters against the EVE Online SSO and manage the
stored tokens. Authorized characters are refreshed automatically when
API commands need a valid access token.`,
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthListCmd())
	cmd.AddCommand(newAuthRevokeCmd())

	return cmd
}
