package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/reward-distribution-go/pkg/balance"
)

func newBalanceCommand(a *app) *cobra.Command {
	var (
		tokenArgs []string
		wait      bool
	)
	cmd := &cobra.Command{
		Use:   "balance <account>...",
		Short: "Print normalized token balances from the mirror node",
		Long: "Accounts are signer names or shard.realm.num IDs. Values are raw / 10^decimals " +
			"multiplied by BALANCE_DISPLAY_SCALE; n/a means the account holds no entry for the token.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, err := a.balanceReader()
			if err != nil {
				return err
			}

			pairs := make([]balance.Pair, 0, len(args)*len(tokenArgs))
			for _, rawAccount := range args {
				accountID, err := a.accountID(rawAccount)
				if err != nil {
					return err
				}
				for _, rawToken := range tokenArgs {
					tokenID, err := a.tokenID(rawToken)
					if err != nil {
						return err
					}
					pairs = append(pairs, balance.Pair{
						Label:     rawAccount + " " + rawToken,
						AccountID: accountID,
						TokenID:   tokenID,
					})
				}
			}

			out := cmd.OutOrStdout()
			if wait {
				for _, pair := range pairs {
					previous, err := reader.TokenBalance(cmd.Context(), pair.AccountID, pair.TokenID)
					if err != nil {
						return err
					}
					current, err := reader.WaitForChange(cmd.Context(), pair.AccountID, pair.TokenID, previous)
					if err != nil {
						return fmt.Errorf("%s: %w", pair.Label, err)
					}
					fmt.Fprintf(out, "%-30s %s -> %s\n", pair.Label, balance.Format(previous), balance.Format(current))
				}
				return nil
			}

			var failed error
			for _, reading := range reader.Snapshot(cmd.Context(), pairs) {
				if reading.Err != nil {
					fmt.Fprintf(out, "%-30s error: %v\n", reading.Label, reading.Err)
					failed = reading.Err
					continue
				}
				fmt.Fprintf(out, "%-30s %s\n", reading.Label, balance.Format(reading.Value))
			}
			return failed
		},
	}
	cmd.Flags().StringSliceVar(&tokenArgs, "token", []string{"mst", "mpt"}, "Tokens to read (IDs or mst, mpt, token)")
	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until each balance changes from its current value")
	return cmd
}
