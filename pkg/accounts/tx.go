package accounts

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildAliasAccountCreateTx creates an account keyed by an ECDSA public key
// whose EVM address alias is derived from the same key.
func BuildAliasAccountCreateTx(params AliasAccountCreateTxParams) (*hedera.AccountCreateTransaction, error) {
	if params.PublicKey.String() == "" {
		return nil, fmt.Errorf("public key is required")
	}
	evmAddress := params.PublicKey.ToEvmAddress()
	if evmAddress == "" {
		return nil, fmt.Errorf("public key must be ECDSA secp256k1 to carry an EVM alias")
	}

	initialBalance := params.InitialBalanceHbar
	if initialBalance <= 0 {
		initialBalance = DefaultInitialBalanceHbar
	}

	transaction := hedera.NewAccountCreateTransaction().
		SetKey(params.PublicKey).
		SetAlias(evmAddress).
		SetInitialBalance(hedera.NewHbar(initialBalance)).
		SetTransactionMemo(normalizeMemo(params.TransactionMemo, AliasAccountCreateMemo))

	maxAssociations := int32(DefaultAutoTokenAssociations)
	if params.MaxAutomaticTokenAssociations != nil {
		maxAssociations = *params.MaxAutomaticTokenAssociations
	}
	transaction.SetMaxAutomaticTokenAssociations(maxAssociations)

	if strings.TrimSpace(params.AccountMemo) != "" {
		transaction.SetAccountMemo(strings.TrimSpace(params.AccountMemo))
	}

	return transaction, nil
}

func normalizeMemo(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
