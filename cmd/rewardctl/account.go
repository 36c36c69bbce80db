package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/reward-distribution-go/pkg/accounts"
	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
)

func newAccountCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Create and inspect ECDSA alias accounts",
	}

	var (
		privateKey   string
		initialHbar  float64
		associations int32
		memo         string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an ECDSA account with an EVM alias, generating a key unless --key is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.accountClient()
			if err != nil {
				return err
			}
			result, err := client.CreateAliasAccount(cmd.Context(), accounts.AliasAccountCreateOptions{
				Signer:                        a.signer(),
				PrivateKey:                    privateKey,
				InitialBalanceHbar:            initialHbar,
				MaxAutomaticTokenAssociations: &associations,
				AccountMemo:                   memo,
			})
			if err != nil {
				return printReceipt(cmd.OutOrStdout(), result.Receipt, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "account:     %s\n", result.AccountID)
			fmt.Fprintf(out, "evm alias:   %s\n", result.EVMAddress)
			fmt.Fprintf(out, "long-zero:   %s\n", result.LongZeroAddress)
			if privateKey == "" {
				fmt.Fprintf(out, "private key: %s\n", result.PrivateKeyRaw)
			}
			return nil
		},
	}
	create.Flags().StringVar(&privateKey, "key", "", "Existing ECDSA private key")
	create.Flags().Float64Var(&initialHbar, "balance", accounts.DefaultInitialBalanceHbar, "Initial balance in hbar")
	create.Flags().Int32Var(&associations, "auto-associations", accounts.DefaultAutoTokenAssociations, "Maximum automatic token associations")
	create.Flags().StringVar(&memo, "memo", "", "Account memo")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "verify <account> <evm-address>",
		Short: "Check the mirror node reports the expected EVM alias for an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.accountClient()
			if err != nil {
				return err
			}
			accountID, err := a.accountID(args[0])
			if err != nil {
				return err
			}
			expected, err := evmaddress.ParseHexAddress(args[1])
			if err != nil {
				return err
			}
			ok, err := client.VerifyAlias(cmd.Context(), accountID, expected)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("account %s does not carry alias %s", accountID, expected)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account %s has alias %s\n", accountID, expected)
			return nil
		},
	})
	return cmd
}

func (a *app) accountClient() (*accounts.Client, error) {
	h, err := a.ledger()
	if err != nil {
		return nil, err
	}
	mirrorClient, err := a.mirrorClient()
	if err != nil {
		return nil, err
	}
	return accounts.NewClient(h, mirrorClient)
}
