package accounts

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
)

const (
	DefaultInitialBalanceHbar    = 10
	DefaultAutoTokenAssociations = 10
	AliasAccountCreateMemo       = "reward-distribution:account_create"
)

type AliasAccountCreateTxParams struct {
	PublicKey                     hedera.PublicKey
	InitialBalanceHbar            float64
	MaxAutomaticTokenAssociations *int32
	AccountMemo                   string
	TransactionMemo               string
}

type AliasAccountCreateOptions struct {
	// Signer pays for the new account. Defaults to the operator.
	Signer string
	// PrivateKey is an existing ECDSA key; empty generates a new one.
	PrivateKey                    string
	InitialBalanceHbar            float64
	MaxAutomaticTokenAssociations *int32
	AccountMemo                   string
	TransactionMemo               string
}

type AliasAccountCreateResult struct {
	AccountID     string
	PrivateKey    hedera.PrivateKey
	PrivateKeyRaw string
	PublicKey     hedera.PublicKey
	EVMAddress    evmaddress.HexAddress
	// LongZeroAddress is the shard.realm.num encoding of AccountID.
	LongZeroAddress evmaddress.HexAddress
	Receipt         ledger.Receipt
}
