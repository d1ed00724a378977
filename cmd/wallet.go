package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newWalletCmd creates the parent command for wallet queries.
func newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Query wallet information",
	}

	cmd.AddCommand(newWalletBalanceCmd())

	return cmd
}

// newWalletBalanceCmd creates the command that prints an authorized
// character's wallet balance.
func newWalletBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <character-id>",
		Short: "Show an authorized character's wallet balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			balance, err := application.Client.Wallet.CharacterBalance(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%.2f ISK\n", balance)
			return nil
		},
	}
}
