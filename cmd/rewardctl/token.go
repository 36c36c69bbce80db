package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
	"github.com/hashgraph-online/reward-distribution-go/pkg/tokens"
)

func newTokenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Create and move fungible tokens",
		Long:  "Token arguments accept IDs or the aliases mst, mpt and token for the configured token IDs.",
	}

	var (
		name     string
		symbol   string
		decimals uint
		supply   uint64
		treasury string
		memo     string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a fungible token whose treasury and supply key default to the signer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.tokenClient()
			if err != nil {
				return err
			}
			result, err := client.CreateFungibleToken(cmd.Context(), tokens.CreateFungibleTokenOptions{
				Signer:            a.signer(),
				Name:              name,
				Symbol:            symbol,
				Decimals:          &decimals,
				InitialSupply:     &supply,
				TreasuryAccountID: treasury,
				TokenMemo:         memo,
			})
			if err != nil {
				return err
			}
			printCreatedToken(cmd.OutOrStdout(), symbol, result)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "Token name")
	create.Flags().StringVar(&symbol, "symbol", "", "Token symbol")
	create.Flags().UintVar(&decimals, "decimals", tokens.DefaultDecimals, "Token decimals")
	create.Flags().Uint64Var(&supply, "supply", tokens.DefaultInitialSupply, "Initial supply in the smallest unit")
	create.Flags().StringVar(&treasury, "treasury", "", "Treasury account ID (defaults to the signer)")
	create.Flags().StringVar(&memo, "memo", "", "Token memo")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("symbol")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "create-staking",
		Short: "Create the MST staking token and the MPT payment token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.tokenClient()
			if err != nil {
				return err
			}
			mst, mpt, err := client.CreateStakingTokens(cmd.Context(), a.signer())
			if mst.TokenID != "" {
				printCreatedToken(cmd.OutOrStdout(), tokens.StakingTokenSymbol, mst)
			}
			if mpt.TokenID != "" {
				printCreatedToken(cmd.OutOrStdout(), tokens.PaymentTokenSymbol, mpt)
			}
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "associate <token>...",
		Short: "Associate tokens with the signer's account",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.tokenClient()
			if err != nil {
				return err
			}
			tokenIDs := make([]string, 0, len(args))
			for _, arg := range args {
				tokenID, err := a.tokenID(arg)
				if err != nil {
					return err
				}
				tokenIDs = append(tokenIDs, tokenID)
			}
			receipt, err := client.Associate(cmd.Context(), a.signer(), tokenIDs...)
			return printReceipt(cmd.OutOrStdout(), receipt, err)
		},
	})

	var registerAmount int64
	register := &cobra.Command{
		Use:   "register <account>",
		Short: "Associate MST and MPT with an account and fund it from the signer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.tokenClient()
			if err != nil {
				return err
			}
			mst, err := a.tokenID("mst")
			if err != nil {
				return err
			}
			mpt, err := a.tokenID("mpt")
			if err != nil {
				return err
			}
			receipts, err := client.RegisterUser(cmd.Context(), args[0], a.signer(), registerAmount, mst, mpt)
			for _, receipt := range receipts {
				_ = printReceipt(cmd.OutOrStdout(), receipt, nil)
			}
			return err
		},
	}
	register.Flags().Int64Var(&registerAmount, "amount", tokens.DefaultRegistrationAmount, "Amount of each token to send")
	cmd.AddCommand(register)

	cmd.AddCommand(&cobra.Command{
		Use:   "approve <token> <spender> [amount]",
		Short: "Approve a spender allowance on the signer's tokens",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.tokenClient()
			if err != nil {
				return err
			}
			tokenID, err := a.tokenID(args[0])
			if err != nil {
				return err
			}
			spender, err := a.accountID(args[1])
			if err != nil {
				return err
			}
			amount := int64(tokens.DefaultAllowance)
			if len(args) == 3 {
				amount, err = strconv.ParseInt(args[2], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", args[2], err)
				}
			}
			receipt, err := client.ApproveAllowance(cmd.Context(), a.signer(), tokenID, spender, amount)
			return printReceipt(cmd.OutOrStdout(), receipt, err)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mint <token> [amount]",
		Short: "Mint tokens into the token treasury",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.tokenClient()
			if err != nil {
				return err
			}
			tokenID, err := a.tokenID(args[0])
			if err != nil {
				return err
			}
			amount := uint64(tokens.DefaultMintAmount)
			if len(args) == 2 {
				amount, err = strconv.ParseUint(args[1], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", args[1], err)
				}
			}
			receipt, err := client.Mint(cmd.Context(), a.signer(), tokenID, amount)
			return printReceipt(cmd.OutOrStdout(), receipt, err)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "transfer <token> <recipient> <amount>",
		Short: "Transfer tokens from the signer to a recipient",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.tokenClient()
			if err != nil {
				return err
			}
			tokenID, err := a.tokenID(args[0])
			if err != nil {
				return err
			}
			recipient, err := a.accountID(args[1])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[2], err)
			}
			receipt, err := client.Transfer(cmd.Context(), a.signer(), tokenID, recipient, amount)
			return printReceipt(cmd.OutOrStdout(), receipt, err)
		},
	})
	return cmd
}

func printCreatedToken(w io.Writer, symbol string, result tokens.CreateTokenResult) {
	fmt.Fprintf(w, "%s token: %s\n", symbol, result.TokenID)
	fmt.Fprintf(w, "  explorer: %s\n", result.ExplorerURL)
}

// printReceipt prints whatever receipt came back and returns err unchanged.
func printReceipt(w io.Writer, receipt ledger.Receipt, err error) error {
	if receipt.Status != "" {
		fmt.Fprintf(w, "status: %s\n", receipt.Status)
	}
	if receipt.TransactionID != "" {
		fmt.Fprintf(w, "transaction: %s\n", receipt.TransactionID)
	}
	return err
}
