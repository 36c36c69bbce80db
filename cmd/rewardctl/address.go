package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
)

func newAddressCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Convert between shard.realm.num IDs and EVM addresses",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode <shard.realm.num>...",
		Short: "Encode IDs as long-zero EVM addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				address, err := evmaddress.EncodeString(raw)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), address)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <0xaddress>...",
		Short: "Decode long-zero EVM addresses to IDs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range args {
				id, err := evmaddress.Decode(evmaddress.HexAddress(raw))
				if err != nil {
					return fmt.Errorf("%s: %w", raw, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "alias <ecdsa-private-key>",
		Short: "Derive the EVM alias of an ECDSA key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias, err := evmaddress.AliasFromECDSAKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), alias)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <signer>",
		Short: "Print the account ID, long-zero address and configured EVM address of a signer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, _ := a.config.Signer(args[0])
			if account.AccountID == "" {
				return fmt.Errorf("account %q is not configured", args[0])
			}
			longZero, err := evmaddress.EncodeString(account.AccountID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "account:   %s\n", account.AccountID)
			fmt.Fprintf(out, "long-zero: %s\n", longZero)
			if account.EVMAddress != "" {
				fmt.Fprintf(out, "evm:       %s\n", account.EVMAddress)
			}
			return nil
		},
	})
	return cmd
}
