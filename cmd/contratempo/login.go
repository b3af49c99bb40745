// ABOUTME: CLI command for verifying account credentials.
// ABOUTME: Exact-match check against the stored user collection.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Verify account credentials",
	Long: `Verify a username/password pair against the user collection.

Comparison is an exact plaintext match, as the stored schema has no
password hashing. The bootstrap coach account is coach/coach123.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := manager.Authenticate(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
		if user == nil {
			return fmt.Errorf("invalid credentials")
		}

		color.Green("✓ Authenticated as %s", user.Name)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(user.ID), user.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
