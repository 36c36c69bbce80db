package staking

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/hashgraph-online/reward-distribution-go/pkg/contractparams"
	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
)

type ClientConfig struct {
	ContractID string
	Network    string
	Gas        uint64
	MaxFeeHbar float64
	QueryGas   uint64
}

// Client calls the reward distribution contract.
type Client struct {
	ledger     ledger.Client
	contractID hedera.ContractID
	network    string
	gas        uint64
	maxFeeHbar float64
	queryGas   uint64
}

// Stakes holds the staking views of one address.
type Stakes struct {
	Address evmaddress.HexAddress
	Staked  uint64
	Rewards uint64
}

func NewClient(ledgerClient ledger.Client, config ClientConfig) (*Client, error) {
	if ledgerClient == nil {
		return nil, fmt.Errorf("ledger client is required")
	}
	rawContractID := strings.TrimSpace(config.ContractID)
	if rawContractID == "" {
		return nil, &shared.MissingEnvError{Keys: []string{shared.EnvContractID}}
	}
	contractID, err := hedera.ContractIDFromString(rawContractID)
	if err != nil {
		return nil, fmt.Errorf("invalid contract ID %q: %w", rawContractID, err)
	}
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	client := &Client{
		ledger:     ledgerClient,
		contractID: contractID,
		network:    network,
		gas:        config.Gas,
		maxFeeHbar: config.MaxFeeHbar,
		queryGas:   config.QueryGas,
	}
	if client.gas == 0 {
		client.gas = DefaultGas
	}
	if client.maxFeeHbar <= 0 {
		client.maxFeeHbar = DefaultMaxFeeHbar
	}
	if client.queryGas == 0 {
		client.queryGas = DefaultQueryGas
	}
	return client, nil
}

func (c *Client) ContractID() string {
	return c.contractID.String()
}

// ExplorerURL links the contract on HashScan.
func (c *Client) ExplorerURL() string {
	return shared.ExplorerURL(c.network, "contract", c.contractID.String())
}

// Operation builds the ledger operation for action without submitting it.
func (c *Client) Operation(signer string, action Action) (ledger.Operation, error) {
	params, err := action.Params()
	if err != nil {
		return ledger.Operation{}, err
	}
	functionParams, err := contractparams.Encode(params)
	if err != nil {
		return ledger.Operation{}, err
	}

	fields := []zap.Field{
		zap.String("contract", c.contractID.String()),
		zap.String("function", action.Function()),
	}
	if action.Kind != ActionClaim {
		fields = append(fields, zap.Uint64("amount", action.Amount))
	}
	if action.Target != "" {
		fields = append(fields, zap.Stringer("target", action.Target))
	}

	executeParams := ExecuteTxParams{
		ContractID: c.contractID,
		Function:   action.Function(),
		Params:     functionParams,
		Gas:        c.gas,
		MaxFeeHbar: c.maxFeeHbar,
	}
	return ledger.Operation{
		Name:   action.String(),
		Signer: signer,
		Fields: fields,
		Prepare: func(*hedera.Client) (ledger.Executable, error) {
			return BuildExecuteTx(executeParams)
		},
	}, nil
}

// Execute submits action paid and signed by signer.
func (c *Client) Execute(ctx context.Context, signer string, action Action) (ledger.Receipt, error) {
	operation, err := c.Operation(signer, action)
	if err != nil {
		return ledger.Receipt{}, err
	}
	return c.ledger.Submit(ctx, operation)
}

func (c *Client) Stake(ctx context.Context, signer string, amount uint64) (ledger.Receipt, error) {
	return c.Execute(ctx, signer, Action{Kind: ActionStake, Amount: amount})
}

func (c *Client) Unstake(ctx context.Context, signer string, amount uint64) (ledger.Receipt, error) {
	return c.Execute(ctx, signer, Action{Kind: ActionUnstake, Amount: amount})
}

func (c *Client) TransferMST(ctx context.Context, signer string, amount uint64, target evmaddress.HexAddress) (ledger.Receipt, error) {
	return c.Execute(ctx, signer, Action{Kind: ActionTransferMST, Amount: amount, Target: target})
}

func (c *Client) TransferMPT(ctx context.Context, signer string, amount uint64, target evmaddress.HexAddress) (ledger.Receipt, error) {
	return c.Execute(ctx, signer, Action{Kind: ActionTransferMPT, Amount: amount, Target: target})
}

func (c *Client) ClaimRewards(ctx context.Context, signer string) (ledger.Receipt, error) {
	return c.Execute(ctx, signer, Action{Kind: ActionClaim})
}

// Stakes reads getStakes and getRewards for address.
func (c *Client) Stakes(ctx context.Context, signer string, address evmaddress.HexAddress) (Stakes, error) {
	staked, err := c.viewUint64(ctx, signer, FunctionGetStakes, address)
	if err != nil {
		return Stakes{}, err
	}
	rewards, err := c.viewUint64(ctx, signer, FunctionGetRewards, address)
	if err != nil {
		return Stakes{}, err
	}
	return Stakes{Address: address, Staked: staked, Rewards: rewards}, nil
}

// TestValue reads the contract's getTestValue string.
func (c *Client) TestValue(ctx context.Context, signer string) (string, error) {
	result, err := c.ledger.Query(ctx, ledger.ContractQuery{
		Name:       FunctionGetTest,
		Signer:     signer,
		ContractID: c.contractID.String(),
		Function:   FunctionGetTest,
		Gas:        c.queryGas,
	})
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", FunctionGetTest, err)
	}
	return result.String(0)
}

func (c *Client) viewUint64(ctx context.Context, signer string, function string, address evmaddress.HexAddress) (uint64, error) {
	params, err := contractparams.NewBuilder().Address(address.String()).Build()
	if err != nil {
		return 0, err
	}
	result, err := c.ledger.Query(ctx, ledger.ContractQuery{
		Name:       function,
		Signer:     signer,
		ContractID: c.contractID.String(),
		Function:   function,
		Params:     params,
		Gas:        c.queryGas,
		Fields:     []zap.Field{zap.Stringer("address", address)},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to query %s: %w", function, err)
	}
	return result.Uint64(0)
}
