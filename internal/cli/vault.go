package cli

import (
	"github.com/spf13/cobra"
)

func newVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Vault commands",
	}

	cmd.AddCommand(newVaultInitCmd())
	cmd.AddCommand(newVaultShowCmd())
	cmd.AddCommand(newVaultDepositCmd())

	return cmd
}

func newVaultInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the vault (creator only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Vault

			if err := client.Post("/api/v1/vault", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newVaultShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the vault record",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Vault

			if err := client.Get("/api/v1/vault", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newVaultDepositCmd() *cobra.Command {
	var amount uint64

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit funds into the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]uint64{"amount": amount}
			var result Player

			if err := client.Post("/api/v1/vault/deposit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&amount, "amount", 0, "Amount in lamports (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
