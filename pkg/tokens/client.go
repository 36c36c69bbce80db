package tokens

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
)

// KeyStore resolves the account and key of a named signer.
type KeyStore interface {
	AccountID(signer string) (hedera.AccountID, error)
	PrivateKey(signer string) (hedera.PrivateKey, error)
}

type Client struct {
	ledger  ledger.Client
	keys    KeyStore
	network string
}

func NewClient(ledgerClient ledger.Client, keys KeyStore, network string) (*Client, error) {
	if ledgerClient == nil {
		return nil, fmt.Errorf("ledger client is required")
	}
	if keys == nil {
		return nil, fmt.Errorf("key store is required")
	}
	normalized, err := shared.NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}
	return &Client{ledger: ledgerClient, keys: keys, network: normalized}, nil
}

// CreateFungibleTokenOperation wraps BuildCreateFungibleTokenTx. signingKeys
// sign after freezing, e.g. a treasury key when the treasury is not the payer.
func CreateFungibleTokenOperation(signer string, params CreateFungibleTokenTxParams, signingKeys ...hedera.PrivateKey) ledger.Operation {
	return ledger.Operation{
		Name:   "create token " + params.Symbol,
		Signer: signer,
		Fields: []zap.Field{
			zap.String("name", params.Name),
			zap.String("symbol", params.Symbol),
			zap.String("treasury", params.TreasuryAccountID.String()),
		},
		Prepare: func(client *hedera.Client) (ledger.Executable, error) {
			transaction, err := BuildCreateFungibleTokenTx(params)
			if err != nil {
				return nil, err
			}
			return ledger.FreezeAndSign(transaction, client, signingKeys...)
		},
	}
}

func AssociateOperation(signer string, params AssociateTxParams, signingKeys ...hedera.PrivateKey) ledger.Operation {
	tokenIDs := make([]string, 0, len(params.TokenIDs))
	for _, tokenID := range params.TokenIDs {
		tokenIDs = append(tokenIDs, tokenID.String())
	}
	return ledger.Operation{
		Name:   "associate tokens",
		Signer: signer,
		Fields: []zap.Field{
			zap.String("account", params.AccountID.String()),
			zap.Strings("tokens", tokenIDs),
		},
		Prepare: func(client *hedera.Client) (ledger.Executable, error) {
			transaction, err := BuildAssociateTx(params)
			if err != nil {
				return nil, err
			}
			return ledger.FreezeAndSign(transaction, client, signingKeys...)
		},
	}
}

func ApproveAllowanceOperation(signer string, params ApproveAllowanceTxParams, signingKeys ...hedera.PrivateKey) ledger.Operation {
	return ledger.Operation{
		Name:   "approve allowance",
		Signer: signer,
		Fields: []zap.Field{
			zap.String("token", params.TokenID.String()),
			zap.String("owner", params.OwnerAccountID.String()),
			zap.String("spender", params.SpenderAccountID.String()),
			zap.Int64("amount", params.Amount),
		},
		Prepare: func(client *hedera.Client) (ledger.Executable, error) {
			transaction, err := BuildApproveAllowanceTx(params)
			if err != nil {
				return nil, err
			}
			return ledger.FreezeAndSign(transaction, client, signingKeys...)
		},
	}
}

// MintOperation must be paid or signed by the holder of the supply key.
func MintOperation(signer string, params MintTxParams, signingKeys ...hedera.PrivateKey) ledger.Operation {
	return ledger.Operation{
		Name:   "mint",
		Signer: signer,
		Fields: []zap.Field{
			zap.String("token", params.TokenID.String()),
			zap.Uint64("amount", params.Amount),
		},
		Prepare: func(client *hedera.Client) (ledger.Executable, error) {
			transaction, err := BuildMintTx(params)
			if err != nil {
				return nil, err
			}
			return ledger.FreezeAndSign(transaction, client, signingKeys...)
		},
	}
}

func TransferOperation(signer string, params TransferTxParams, signingKeys ...hedera.PrivateKey) ledger.Operation {
	return ledger.Operation{
		Name:   "transfer tokens",
		Signer: signer,
		Fields: []zap.Field{
			zap.String("token", params.TokenID.String()),
			zap.String("from", params.FromAccountID.String()),
			zap.String("to", params.ToAccountID.String()),
			zap.Int64("amount", params.Amount),
		},
		Prepare: func(client *hedera.Client) (ledger.Executable, error) {
			transaction, err := BuildTransferTx(params)
			if err != nil {
				return nil, err
			}
			return ledger.FreezeAndSign(transaction, client, signingKeys...)
		},
	}
}

// CreateFungibleToken creates a token whose treasury and supply key default to
// the signer.
func (c *Client) CreateFungibleToken(ctx context.Context, options CreateFungibleTokenOptions) (CreateTokenResult, error) {
	signer := normalizeSigner(options.Signer)
	signerAccountID, err := c.keys.AccountID(signer)
	if err != nil {
		return CreateTokenResult{}, err
	}

	treasuryAccountID := signerAccountID
	if strings.TrimSpace(options.TreasuryAccountID) != "" {
		treasuryAccountID, err = hedera.AccountIDFromString(strings.TrimSpace(options.TreasuryAccountID))
		if err != nil {
			return CreateTokenResult{}, fmt.Errorf("invalid treasury account ID: %w", err)
		}
	}

	supplyKey := options.SupplyKey
	if supplyKey == nil {
		signerKey, err := c.keys.PrivateKey(signer)
		if err != nil {
			return CreateTokenResult{}, err
		}
		supplyKey = signerKey.PublicKey()
	}

	operation := CreateFungibleTokenOperation(signer, CreateFungibleTokenTxParams{
		Name:              options.Name,
		Symbol:            options.Symbol,
		Decimals:          options.Decimals,
		InitialSupply:     options.InitialSupply,
		TreasuryAccountID: treasuryAccountID,
		SupplyKey:         supplyKey,
		TokenMemo:         options.TokenMemo,
	}, options.SigningKeys...)

	receipt, err := c.ledger.Submit(ctx, operation)
	if err != nil {
		return CreateTokenResult{Receipt: receipt}, fmt.Errorf("failed to create token %s: %w", options.Symbol, err)
	}
	if receipt.TokenID == "" {
		return CreateTokenResult{Receipt: receipt}, fmt.Errorf("token create receipt missing token ID")
	}

	return CreateTokenResult{
		TokenID:     receipt.TokenID,
		ExplorerURL: shared.ExplorerURL(c.network, "token", receipt.TokenID),
		Receipt:     receipt,
	}, nil
}

// CreateStakingTokens creates the MST and MPT tokens with default settings.
func (c *Client) CreateStakingTokens(ctx context.Context, signer string) (CreateTokenResult, CreateTokenResult, error) {
	mst, err := c.CreateFungibleToken(ctx, CreateFungibleTokenOptions{
		Signer: signer,
		Name:   StakingTokenName,
		Symbol: StakingTokenSymbol,
	})
	if err != nil {
		return CreateTokenResult{}, CreateTokenResult{}, err
	}
	mpt, err := c.CreateFungibleToken(ctx, CreateFungibleTokenOptions{
		Signer: signer,
		Name:   PaymentTokenName,
		Symbol: PaymentTokenSymbol,
	})
	if err != nil {
		return mst, CreateTokenResult{}, err
	}
	return mst, mpt, nil
}

// Associate associates tokenIDs with the signer's own account.
func (c *Client) Associate(ctx context.Context, signer string, tokenIDs ...string) (ledger.Receipt, error) {
	signer = normalizeSigner(signer)
	accountID, err := c.keys.AccountID(signer)
	if err != nil {
		return ledger.Receipt{}, err
	}
	parsed, err := parseTokenIDs(tokenIDs)
	if err != nil {
		return ledger.Receipt{}, err
	}

	receipt, err := c.ledger.Submit(ctx, AssociateOperation(signer, AssociateTxParams{
		AccountID: accountID,
		TokenIDs:  parsed,
	}))
	if err != nil {
		return receipt, fmt.Errorf("failed to associate tokens with %s: %w", accountID.String(), err)
	}
	return receipt, nil
}

// ApproveAllowance lets spender move amount of the signer's tokenID.
func (c *Client) ApproveAllowance(ctx context.Context, signer string, tokenID string, spender string, amount int64) (ledger.Receipt, error) {
	signer = normalizeSigner(signer)
	ownerAccountID, err := c.keys.AccountID(signer)
	if err != nil {
		return ledger.Receipt{}, err
	}
	parsedToken, err := hedera.TokenIDFromString(strings.TrimSpace(tokenID))
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("invalid token ID %q: %w", tokenID, err)
	}
	spenderAccountID, err := hedera.AccountIDFromString(strings.TrimSpace(spender))
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("invalid spender account ID %q: %w", spender, err)
	}

	receipt, err := c.ledger.Submit(ctx, ApproveAllowanceOperation(signer, ApproveAllowanceTxParams{
		TokenID:          parsedToken,
		OwnerAccountID:   ownerAccountID,
		SpenderAccountID: spenderAccountID,
		Amount:           amount,
	}))
	if err != nil {
		return receipt, fmt.Errorf("failed to approve allowance: %w", err)
	}
	return receipt, nil
}

// Mint mints amount of tokenID; the signer must hold the supply key.
func (c *Client) Mint(ctx context.Context, signer string, tokenID string, amount uint64) (ledger.Receipt, error) {
	parsedToken, err := hedera.TokenIDFromString(strings.TrimSpace(tokenID))
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("invalid token ID %q: %w", tokenID, err)
	}

	receipt, err := c.ledger.Submit(ctx, MintOperation(normalizeSigner(signer), MintTxParams{
		TokenID: parsedToken,
		Amount:  amount,
	}))
	if err != nil {
		return receipt, fmt.Errorf("failed to mint tokens: %w", err)
	}
	return receipt, nil
}

// Transfer sends amount of tokenID from the signer to recipient.
func (c *Client) Transfer(ctx context.Context, signer string, tokenID string, recipient string, amount int64) (ledger.Receipt, error) {
	signer = normalizeSigner(signer)
	fromAccountID, err := c.keys.AccountID(signer)
	if err != nil {
		return ledger.Receipt{}, err
	}
	parsedToken, err := hedera.TokenIDFromString(strings.TrimSpace(tokenID))
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("invalid token ID %q: %w", tokenID, err)
	}
	toAccountID, err := hedera.AccountIDFromString(strings.TrimSpace(recipient))
	if err != nil {
		return ledger.Receipt{}, fmt.Errorf("invalid recipient account ID %q: %w", recipient, err)
	}

	receipt, err := c.ledger.Submit(ctx, TransferOperation(signer, TransferTxParams{
		TokenID:       parsedToken,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
	}))
	if err != nil {
		return receipt, fmt.Errorf("failed to transfer tokens: %w", err)
	}
	return receipt, nil
}

// RegisterUser associates tokenIDs with the user's account and then funds it
// with amount of each token from funder. It stops at the first failure and
// returns the receipts collected so far.
func (c *Client) RegisterUser(ctx context.Context, user string, funder string, amount int64, tokenIDs ...string) ([]ledger.Receipt, error) {
	user = normalizeSigner(user)
	userAccountID, err := c.keys.AccountID(user)
	if err != nil {
		return nil, err
	}

	receipts := make([]ledger.Receipt, 0, len(tokenIDs)+1)
	receipt, err := c.Associate(ctx, user, tokenIDs...)
	receipts = append(receipts, receipt)
	if err != nil {
		return receipts, err
	}

	for _, tokenID := range tokenIDs {
		receipt, err := c.Transfer(ctx, funder, tokenID, userAccountID.String(), amount)
		receipts = append(receipts, receipt)
		if err != nil {
			return receipts, fmt.Errorf("failed to fund %s with %s: %w", user, tokenID, err)
		}
	}
	return receipts, nil
}

func parseTokenIDs(tokenIDs []string) ([]hedera.TokenID, error) {
	parsed := make([]hedera.TokenID, 0, len(tokenIDs))
	for _, tokenID := range tokenIDs {
		trimmed := strings.TrimSpace(tokenID)
		if trimmed == "" {
			continue
		}
		id, err := hedera.TokenIDFromString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid token ID %q: %w", tokenID, err)
		}
		parsed = append(parsed, id)
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("at least one token ID is required")
	}
	return parsed, nil
}

func normalizeSigner(signer string) string {
	normalized := strings.ToLower(strings.TrimSpace(signer))
	if normalized == "" {
		return shared.SignerOperator
	}
	return normalized
}
