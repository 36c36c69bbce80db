package tokens

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
)

const (
	DefaultDecimals      = 2
	DefaultInitialSupply = 10000
	// DefaultAllowance is the spender allowance granted during staking setup.
	DefaultAllowance = 10000000
	// DefaultMintAmount is the top-up minted into a token treasury.
	DefaultMintAmount = 100000
	// DefaultRegistrationAmount is the MST and MPT amount sent to a new user.
	DefaultRegistrationAmount = 100

	DefaultMaxFeeHbar = 20
)

const (
	StakingTokenName   = "Mintable Staking Token"
	StakingTokenSymbol = "MST"
	PaymentTokenName   = "Mintable Payment Token"
	PaymentTokenSymbol = "MPT"
)

type CreateFungibleTokenTxParams struct {
	Name              string
	Symbol            string
	Decimals          *uint
	InitialSupply     *uint64
	TreasuryAccountID hedera.AccountID
	SupplyKey         hedera.Key
	AdminKey          hedera.Key
	TokenMemo         string
	TransactionMemo   string
	MaxFeeHbar        float64
}

type AssociateTxParams struct {
	AccountID hedera.AccountID
	TokenIDs  []hedera.TokenID
}

type ApproveAllowanceTxParams struct {
	TokenID          hedera.TokenID
	OwnerAccountID   hedera.AccountID
	SpenderAccountID hedera.AccountID
	Amount           int64
}

type MintTxParams struct {
	TokenID    hedera.TokenID
	Amount     uint64
	MaxFeeHbar float64
}

type TransferTxParams struct {
	TokenID       hedera.TokenID
	FromAccountID hedera.AccountID
	ToAccountID   hedera.AccountID
	Amount        int64
}

type CreateFungibleTokenOptions struct {
	Signer        string
	Name          string
	Symbol        string
	Decimals      *uint
	InitialSupply *uint64
	// TreasuryAccountID defaults to the signer's account.
	TreasuryAccountID string
	// SupplyKey defaults to the signer's public key so the signer can mint.
	SupplyKey   hedera.Key
	SigningKeys []hedera.PrivateKey
	TokenMemo   string
}

type CreateTokenResult struct {
	TokenID     string
	ExplorerURL string
	Receipt     ledger.Receipt
}
