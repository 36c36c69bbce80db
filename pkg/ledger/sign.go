package ledger

import (
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

type signable[T any] interface {
	Executable
	FreezeWith(client *hedera.Client) (T, error)
	Sign(privateKey hedera.PrivateKey) T
}

// FreezeAndSign freezes transaction against client and adds a signature for
// every extra key. The payer signature is added by the client on execute.
func FreezeAndSign[T signable[T]](transaction T, client *hedera.Client, keys ...hedera.PrivateKey) (Executable, error) {
	if len(keys) == 0 {
		return transaction, nil
	}
	frozen, err := transaction.FreezeWith(client)
	if err != nil {
		return nil, fmt.Errorf("failed to freeze transaction: %w", err)
	}
	for _, key := range keys {
		frozen = frozen.Sign(key)
	}
	return frozen, nil
}
