package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the server",
	Long: `Sign in with email and password. Credentials come from the flags or,
when absent, from the auth section of the config file. On v4 servers the
printed token can be stored as auth.token to skip future logins.`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := loginEmail
	if email == "" {
		email = cfg.Auth.Email
	}
	password := loginPassword
	if password == "" {
		password = cfg.Auth.Password
	}
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required (flags or auth config)")
	}

	session, err := client.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	logger.Info().Str("user", session.Email).Msg("signed in")
	fmt.Printf("Signed in as %s (%s)\n", session.Nickname, session.Email)
	if session.Token != "" {
		fmt.Printf("Access token: %s\n", session.Token)
		fmt.Printf("Refresh token: %s\n", session.RefreshToken)
	}
	return nil
}

// quotaCmd represents the quota command
var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Show the account's storage quota",
	RunE:  runQuota,
}

func runQuota(cmd *cobra.Command, args []string) error {
	quota, err := client.StorageQuota(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Used:  %s\n", formatSize(quota.Used))
	fmt.Printf("Total: %s\n", formatSize(quota.Total))
	if quota.Total > 0 {
		fmt.Printf("%.1f%% of quota in use\n", float64(quota.Used)/float64(quota.Total)*100)
	}
	return nil
}

// formatSize renders a byte count in a human-readable unit.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
