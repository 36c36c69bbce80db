package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/hashgraph-online/reward-distribution-go/pkg/artifacts"
	"github.com/hashgraph-online/reward-distribution-go/pkg/contractparams"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
	"github.com/hashgraph-online/reward-distribution-go/pkg/staking"
)

const (
	contractFeeToken           = "fee-token"
	contractRewardDistribution = "reward-distribution"
)

func newContractCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Deploy and call the reward distribution contracts",
	}
	cmd.AddCommand(
		newContractDeployCommand(a),
		newContractExecCommand(a),
		newContractCallCommand(a),
		newContractEncodeCommand(),
	)
	return cmd
}

func newContractDeployCommand(a *app) *cobra.Command {
	var (
		bytecodePath string
		abiPath      string
		artifactPath string
		gas          int64
		feePercent   uint64
		stakingToken string
		paymentToken string
		feeRecipient string
	)
	cmd := &cobra.Command{
		Use:       "deploy <fee-token|reward-distribution>",
		Short:     "Deploy a contract through ContractCreateFlow",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{contractFeeToken, contractRewardDistribution},
		RunE: func(cmd *cobra.Command, args []string) error {
			mst, mpt, recipient, err := a.deployDefaults(args[0], stakingToken, paymentToken, feeRecipient)
			if err != nil {
				return err
			}
			bytecode, err := loadDeployArtifact(args[0], bytecodePath, abiPath, artifactPath)
			if err != nil {
				return err
			}
			h, err := a.ledger()
			if err != nil {
				return err
			}
			deployer, err := staking.NewDeployer(h, a.config.Network, gas)
			if err != nil {
				return err
			}

			var result staking.DeployResult
			switch args[0] {
			case contractFeeToken:
				result, err = deployer.DeployFeeToken(cmd.Context(), a.signer(), bytecode, staking.FeeTokenArgs{
					PaymentToken: mpt,
					FeeRecipient: recipient,
				})
			case contractRewardDistribution:
				result, err = deployer.DeployRewardDistribution(cmd.Context(), a.signer(), bytecode, staking.RewardDistributionArgs{
					StakingToken:  mst,
					PaymentToken:  mpt,
					FeeRecipient:  recipient,
					FeePercentage: feePercent,
				})
			default:
				return fmt.Errorf("unknown contract %q", args[0])
			}
			if err != nil {
				return printReceipt(cmd.OutOrStdout(), result.Receipt, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "contract: %s\n  explorer: %s\n", result.ContractID, result.ExplorerURL)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&bytecodePath, "bytecode", "", "Path to the .bin or .bin.br bytecode")
	flags.StringVar(&abiPath, "abi", "", "Optional ABI used to check the constructor arity")
	flags.StringVar(&artifactPath, "artifact", "", "Hardhat JSON artifact holding both ABI and bytecode")
	flags.Int64Var(&gas, "gas", staking.DefaultDeployGas, "Gas limit for the constructor")
	flags.Uint64Var(&feePercent, "fee-percentage", staking.DefaultFeePercentage, "RewardDistribution fee percentage")
	flags.StringVar(&stakingToken, "mst", "", "Staking token (defaults to MST_TOKEN_ADDRESS)")
	flags.StringVar(&paymentToken, "mpt", "", "Payment token (defaults to MPT_TOKEN_ADDRESS)")
	flags.StringVar(&feeRecipient, "fee-recipient", "", "Fee recipient (defaults to FEE_RECIPIENT, then the operator)")
	return cmd
}

// deployDefaults fills unset constructor tokens from the configuration and
// fails before any network call when the configuration lacks them too.
func (a *app) deployDefaults(contract string, mst string, mpt string, recipient string) (string, string, string, error) {
	required := make([]string, 0, 2)
	switch contract {
	case contractRewardDistribution:
		if mst == "" {
			required = append(required, shared.EnvMSTToken)
		}
	case contractFeeToken:
	default:
		return "", "", "", fmt.Errorf("unknown contract %q", contract)
	}
	if mpt == "" {
		required = append(required, shared.EnvMPTToken)
	}
	if err := a.config.Require(required...); err != nil {
		return "", "", "", err
	}

	if mst == "" {
		mst = a.config.MSTTokenID
	}
	if mpt == "" {
		mpt = a.config.MPTTokenID
	}
	if recipient == "" {
		recipient = a.config.FeeRecipient
	}
	if recipient == "" {
		recipient = a.config.Operator.AccountID
	}
	return mst, mpt, recipient, nil
}

func loadDeployArtifact(contract string, bytecodePath string, abiPath string, artifactPath string) (string, error) {
	constructorArgs := 2
	if contract == contractRewardDistribution {
		constructorArgs = 4
	}

	if artifactPath != "" {
		artifact, err := artifacts.LoadArtifact(artifactPath)
		if err != nil {
			return "", err
		}
		if err := artifacts.CheckConstructor(artifact.ABI, constructorArgs); err != nil {
			return "", fmt.Errorf("%s: %w", artifact.Name, err)
		}
		return artifact.Bytecode, nil
	}

	if bytecodePath == "" {
		return "", fmt.Errorf("--bytecode or --artifact is required")
	}
	if abiPath != "" {
		contractABI, err := artifacts.LoadABI(abiPath)
		if err != nil {
			return "", err
		}
		if err := artifacts.CheckConstructor(contractABI, constructorArgs); err != nil {
			return "", err
		}
	}
	return artifacts.LoadBytecode(bytecodePath)
}

func newContractExecCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <stake|unstake|transfer-mst|transfer-mpt|claim> [amount] [target]",
		Short: "Call a state-changing function of the reward distribution contract",
		Long: "Targets are signer names, shard.realm.num IDs or hex addresses. A signer with " +
			"ACCOUNTn_ADDRESS_ETHER set is paid at that address, otherwise at its long-zero address.",
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := a.parseAction(args)
			if err != nil {
				return err
			}
			client, err := a.stakingClient()
			if err != nil {
				return err
			}
			receipt, err := client.Execute(cmd.Context(), a.signer(), action)
			return printReceipt(cmd.OutOrStdout(), receipt, err)
		},
	}
}

func (a *app) parseAction(args []string) (staking.Action, error) {
	kind, err := staking.ParseActionKind(args[0])
	if err != nil {
		return staking.Action{}, err
	}
	action := staking.Action{Kind: kind}
	if len(args) > 1 {
		action.Amount, err = strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return staking.Action{}, fmt.Errorf("invalid amount %q: %w", args[1], err)
		}
	}
	if len(args) > 2 {
		action.Target, err = staking.ResolveTarget(a.config, args[2])
		if err != nil {
			return staking.Action{}, err
		}
	}
	return action, nil
}

func newContractCallCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Read views of the reward distribution contract",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "stakes <account>...",
		Short: "Print staked amount and pending rewards",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.stakingClient()
			if err != nil {
				return err
			}
			for _, raw := range args {
				address, err := staking.ResolveTarget(a.config, raw)
				if err != nil {
					return err
				}
				stakes, err := client.Stakes(cmd.Context(), a.signer(), address)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): staked %d, rewards %d\n", raw, stakes.Address, stakes.Staked, stakes.Rewards)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "test-value",
		Short: "Print getTestValue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.stakingClient()
			if err != nil {
				return err
			}
			value, err := client.TestValue(cmd.Context(), a.signer())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})
	return cmd
}

func newContractEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <function> [kind:value]...",
		Short: "Print the signature and ABI calldata of a contract call",
		Long:  "Encode builds calldata offline.\n\n" + contractparams.ArgsDoc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := contractparams.ParseArgs(args[1:])
			if err != nil {
				return err
			}
			return printCalldata(cmd.OutOrStdout(), args[0], params)
		},
	}
}

func printCalldata(w io.Writer, function string, params []contractparams.Param) error {
	calldata, err := contractparams.Calldata(function, params)
	if err != nil {
		return err
	}
	rendered := make([]string, 0, len(params))
	for _, param := range params {
		rendered = append(rendered, param.String())
	}
	fmt.Fprintf(w, "signature: %s\n", contractparams.Signature(function, params))
	if len(rendered) > 0 {
		fmt.Fprintf(w, "params:    %s\n", strings.Join(rendered, " "))
	}
	fmt.Fprintf(w, "calldata:  %s\n", hexutil.Encode(calldata))
	return nil
}

