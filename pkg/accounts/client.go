package accounts

import (
	"context"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
	"github.com/hashgraph-online/reward-distribution-go/pkg/mirror"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
)

// AccountSource looks accounts up on the mirror node.
type AccountSource interface {
	GetAccount(ctx context.Context, accountID string) (*mirror.AccountInfo, error)
}

type Client struct {
	ledger ledger.Client
	mirror AccountSource
}

func NewClient(ledgerClient ledger.Client, mirrorClient AccountSource) (*Client, error) {
	if ledgerClient == nil {
		return nil, fmt.Errorf("ledger client is required")
	}
	return &Client{ledger: ledgerClient, mirror: mirrorClient}, nil
}

// CreateAliasAccount creates an ECDSA account with an EVM alias, generating a
// key unless one is given.
func (c *Client) CreateAliasAccount(ctx context.Context, options AliasAccountCreateOptions) (AliasAccountCreateResult, error) {
	privateKey, err := resolveKey(options.PrivateKey)
	if err != nil {
		return AliasAccountCreateResult{}, err
	}
	publicKey := privateKey.PublicKey()

	alias, err := evmaddress.AliasFromECDSAKey(privateKey.StringRaw())
	if err != nil {
		return AliasAccountCreateResult{}, fmt.Errorf("failed to derive EVM alias: %w", err)
	}

	params := AliasAccountCreateTxParams{
		PublicKey:                     publicKey,
		InitialBalanceHbar:            options.InitialBalanceHbar,
		MaxAutomaticTokenAssociations: options.MaxAutomaticTokenAssociations,
		AccountMemo:                   options.AccountMemo,
		TransactionMemo:               options.TransactionMemo,
	}
	signer := strings.TrimSpace(options.Signer)
	if signer == "" {
		signer = shared.SignerOperator
	}

	receipt, err := c.ledger.Submit(ctx, ledger.Operation{
		Name:   "create account",
		Signer: signer,
		Fields: []zap.Field{zap.Stringer("alias", alias)},
		Prepare: func(*hedera.Client) (ledger.Executable, error) {
			return BuildAliasAccountCreateTx(params)
		},
	})
	if err != nil {
		return AliasAccountCreateResult{}, fmt.Errorf("failed to execute account create transaction: %w", err)
	}
	if receipt.AccountID == "" {
		return AliasAccountCreateResult{}, fmt.Errorf("account create receipt missing account ID")
	}

	longZero, err := evmaddress.EncodeString(receipt.AccountID)
	if err != nil {
		return AliasAccountCreateResult{}, err
	}

	return AliasAccountCreateResult{
		AccountID:       receipt.AccountID,
		PrivateKey:      privateKey,
		PrivateKeyRaw:   privateKey.StringRaw(),
		PublicKey:       publicKey,
		EVMAddress:      alias,
		LongZeroAddress: longZero,
		Receipt:         receipt,
	}, nil
}

// VerifyAlias reports whether the mirror node lists expected as the EVM
// address of accountID. A missing account yields false.
func (c *Client) VerifyAlias(ctx context.Context, accountID string, expected evmaddress.HexAddress) (bool, error) {
	if c.mirror == nil {
		return false, fmt.Errorf("mirror client is required")
	}
	if strings.TrimSpace(accountID) == "" {
		return false, fmt.Errorf("account ID is required")
	}
	normalizedExpected, err := evmaddress.ParseHexAddress(expected.String())
	if err != nil {
		return false, err
	}

	info, err := c.mirror.GetAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	if info == nil || strings.TrimSpace(info.EVMAddress) == "" {
		return false, nil
	}
	actual, err := evmaddress.ParseHexAddress(info.EVMAddress)
	if err != nil {
		return false, nil
	}
	return actual == normalizedExpected, nil
}

// VerifyKey reports whether the mirror node key of accountID matches publicKey.
func (c *Client) VerifyKey(ctx context.Context, accountID string, publicKey hedera.PublicKey) (bool, error) {
	if c.mirror == nil {
		return false, fmt.Errorf("mirror client is required")
	}
	info, err := c.mirror.GetAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	if info == nil {
		return false, nil
	}
	mirrorKey := strings.ToLower(extractMirrorKey(info.Key))
	if mirrorKey == "" {
		return false, nil
	}
	return strings.HasSuffix(mirrorKey, strings.ToLower(publicKey.StringRaw())), nil
}

func resolveKey(raw string) (hedera.PrivateKey, error) {
	if strings.TrimSpace(raw) == "" {
		privateKey, err := hedera.PrivateKeyGenerateEcdsa()
		if err != nil {
			return hedera.PrivateKey{}, fmt.Errorf("failed to generate ecdsa private key: %w", err)
		}
		return privateKey, nil
	}
	privateKey, err := hedera.PrivateKeyFromStringECDSA(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
	if err != nil {
		return hedera.PrivateKey{}, fmt.Errorf("invalid ecdsa private key: %w", err)
	}
	return privateKey, nil
}

func extractMirrorKey(raw map[string]any) string {
	if raw == nil {
		return ""
	}
	return extractKeyCandidate(raw)
}

func extractKeyCandidate(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case map[string]any:
		for _, key := range []string{"key", "ECDSA_secp256k1"} {
			if nested, ok := typed[key]; ok {
				candidate := extractKeyCandidate(nested)
				if candidate != "" {
					return candidate
				}
			}
		}
	case []any:
		for _, nested := range typed {
			candidate := extractKeyCandidate(nested)
			if candidate != "" {
				return candidate
			}
		}
	}
	return ""
}
