package cmd

import (
	"errors"
	"os"

	"eveutil/pkg/auth"
	"eveutil/pkg/esi"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// These follow common conventions for auth-aware tooling.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeAuthRequired indicates authentication is required but not available.
	ExitCodeAuthRequired = 2
	// ExitCodeAuthFailed indicates the OAuth flow failed.
	ExitCodeAuthFailed = 3
)

var logLevelFlag string

// rootCmd represents the base command for the eveutil application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "eveutil",
	Short: "Query the EVE Online ESI API from the command line",
	Long: `eveutil authorizes characters against the EVE Online SSO, keeps their
tokens refreshed in a local store, and exposes ESI routes (character,
wallet, server status) as subcommands.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "eveutil version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if errors.Is(err, auth.ErrReauthorizationRequired) {
		return ExitCodeAuthRequired
	}

	var authErr *esi.AuthenticationError
	if errors.As(err, &authErr) {
		return ExitCodeAuthRequired
	}

	if errors.Is(err, auth.ErrStateMismatch) {
		return ExitCodeAuthFailed
	}

	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"log level: debug, info, warn, error (overrides EVE_LOG_LEVEL)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newCharacterCmd())
	rootCmd.AddCommand(newWalletCmd())
	rootCmd.AddCommand(newStatusCmd())
}
