package staking

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/hashgraph-online/reward-distribution-go/pkg/contractparams"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
)

type DeployResult struct {
	ContractID  string
	ExplorerURL string
	Receipt     ledger.Receipt
}

// FeeTokenArgs are the FeeToken constructor arguments.
type FeeTokenArgs struct {
	PaymentToken string
	FeeRecipient string
}

// RewardDistributionArgs are the RewardDistribution constructor arguments.
// Token and recipient values accept shard.realm.num IDs or hex addresses.
type RewardDistributionArgs struct {
	StakingToken  string
	PaymentToken  string
	FeeRecipient  string
	FeePercentage uint64
}

// Params returns FeeToken(address paymentToken, address feeRecipient).
func (a FeeTokenArgs) Params() ([]contractparams.Param, error) {
	builder := contractparams.NewBuilder().
		Address(a.PaymentToken).
		Address(a.FeeRecipient)
	if err := builder.Err(); err != nil {
		return nil, err
	}
	return builder.Params(), nil
}

// Params returns RewardDistribution(address mst, address mpt, address
// feeRecipient, uint256 feePercentage).
func (a RewardDistributionArgs) Params() ([]contractparams.Param, error) {
	fee := a.FeePercentage
	if fee == 0 {
		fee = DefaultFeePercentage
	}
	builder := contractparams.NewBuilder().
		Address(a.StakingToken).
		Address(a.PaymentToken).
		Address(a.FeeRecipient).
		Uint256(uint256.NewInt(fee))
	if err := builder.Err(); err != nil {
		return nil, err
	}
	return builder.Params(), nil
}

// Deployer creates contracts through ContractCreateFlow.
type Deployer struct {
	ledger  ledger.Client
	network string
	gas     int64
}

func NewDeployer(ledgerClient ledger.Client, network string, gas int64) (*Deployer, error) {
	if ledgerClient == nil {
		return nil, fmt.Errorf("ledger client is required")
	}
	normalized, err := shared.NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}
	if gas <= 0 {
		gas = DefaultDeployGas
	}
	return &Deployer{ledger: ledgerClient, network: normalized, gas: gas}, nil
}

// DeployOperation builds the ledger operation for one contract creation.
func DeployOperation(signer string, name string, params DeployTxParams) ledger.Operation {
	return ledger.Operation{
		Name:   "deploy " + name,
		Signer: signer,
		Fields: []zap.Field{
			zap.String("contract", name),
			zap.Int("bytecode_hex_len", len(params.Bytecode)),
			zap.Int64("gas", params.Gas),
		},
		Prepare: func(*hedera.Client) (ledger.Executable, error) {
			return BuildDeployFlow(params)
		},
	}
}

// Deploy creates a contract from bytecode hex and constructor params.
func (d *Deployer) Deploy(ctx context.Context, signer string, name string, bytecode string, constructor []contractparams.Param) (DeployResult, error) {
	constructorParams, err := contractparams.Encode(constructor)
	if err != nil {
		return DeployResult{}, fmt.Errorf("invalid %s constructor arguments: %w", name, err)
	}

	receipt, err := d.ledger.Submit(ctx, DeployOperation(signer, name, DeployTxParams{
		Bytecode:    bytecode,
		Gas:         d.gas,
		Constructor: constructorParams,
	}))
	if err != nil {
		return DeployResult{Receipt: receipt}, fmt.Errorf("failed to deploy %s: %w", name, err)
	}
	if receipt.ContractID == "" {
		return DeployResult{Receipt: receipt}, fmt.Errorf("%s deploy receipt missing contract ID", name)
	}

	return DeployResult{
		ContractID:  receipt.ContractID,
		ExplorerURL: shared.ExplorerURL(d.network, "contract", receipt.ContractID),
		Receipt:     receipt,
	}, nil
}

func (d *Deployer) DeployFeeToken(ctx context.Context, signer string, bytecode string, args FeeTokenArgs) (DeployResult, error) {
	params, err := args.Params()
	if err != nil {
		return DeployResult{}, err
	}
	return d.Deploy(ctx, signer, "FeeToken", bytecode, params)
}

func (d *Deployer) DeployRewardDistribution(ctx context.Context, signer string, bytecode string, args RewardDistributionArgs) (DeployResult, error) {
	params, err := args.Params()
	if err != nil {
		return DeployResult{}, err
	}
	return d.Deploy(ctx, signer, "RewardDistribution", bytecode, params)
}
