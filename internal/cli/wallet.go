package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWalletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet management commands",
	}

	cmd.AddCommand(newWalletRegisterCmd())
	cmd.AddCommand(newWalletLoginCmd())
	cmd.AddCommand(newWalletMeCmd())

	return cmd
}

func newWalletRegisterCmd() *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new wallet identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"passphrase": pass}
			var result AuthResult

			if err := client.Post("/api/v1/wallets/register", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&pass, "pass", "", "Passphrase (required)")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newWalletLoginCmd() *cobra.Command {
	var identity, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with an existing identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"identity":   identity,
				"passphrase": pass,
			}
			var result AuthResult

			if err := client.Post("/api/v1/wallets/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&identity, "identity", "", "Wallet identity (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Passphrase (required)")
	_ = cmd.MarkFlagRequired("identity")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newWalletMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AuthResult

			if err := client.Get("/api/v1/wallets/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
