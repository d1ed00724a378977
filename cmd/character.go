package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newCharacterCmd creates the parent command for character queries.
func newCharacterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Query character information",
	}

	cmd.AddCommand(newCharacterInfoCmd())
	cmd.AddCommand(newCharacterLocationCmd())

	return cmd
}

// newCharacterInfoCmd creates the command that prints a character's public
// information.
func newCharacterInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <character-id>",
		Short: "Show a character's public information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			characterID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid character ID %q: %w", args[0], err)
			}

			info, err := application.Client.Character.PublicInfo(cmd.Context(), characterID)
			if err != nil {
				return err
			}

			printJSON(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

// newCharacterLocationCmd creates the command that prints an authorized
// character's current location.
func newCharacterLocationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "location <character-id>",
		Short: "Show an authorized character's current location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApp()
			if err != nil {
				return err
			}

			location, err := application.Client.Character.Location(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printJSON(cmd.OutOrStdout(), location)
			return nil
		},
	}
}
