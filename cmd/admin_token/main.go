// Command admin_token mints bearer tokens for the admin write endpoints.
// The service has no login flow, so operators sign tokens with the shared JWT_SECRET.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/storefront_currency/internal/platform/config"
	"github.com/SscSPs/storefront_currency/internal/utils"
	"github.com/spf13/cobra"
)

var (
	subject     string
	ttl         time.Duration
	secretBytes int
)

var rootCmd = &cobra.Command{
	Use:          "admin_token",
	Short:        "Manage admin bearer tokens for the currency service",
	SilenceUsage: true,
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Sign a bearer token with JWT_SECRET",
	Long: `Sign an HS256 token whose subject is recorded as the author of
currency, exchange rate and base currency changes.`,
	RunE: runMint,
}

var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Print a random value suitable for JWT_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := utils.GenerateSigningSecret(secretBytes)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), secret)
		return nil
	},
}

func init() {
	mintCmd.Flags().StringVar(&subject, "subject", "", "user or operator the token acts as (required)")
	mintCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = mintCmd.MarkFlagRequired("subject")

	secretCmd.Flags().IntVar(&secretBytes, "bytes", 32, "number of random bytes")

	rootCmd.AddCommand(mintCmd, secretCmd)
}

func runMint(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}

	token, err := utils.GenerateAdminToken(subject, cfg.JWTSecret, ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
