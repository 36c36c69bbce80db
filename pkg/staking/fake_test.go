package staking

import (
	"context"
	"fmt"

	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
)

type fakeLedger struct {
	operations []ledger.Operation
	prepared   []ledger.Executable
	queries    []ledger.ContractQuery
	results    map[string]ledger.CallResult
	receipt    ledger.Receipt
	submitErr  error
}

func (f *fakeLedger) Submit(ctx context.Context, operation ledger.Operation) (ledger.Receipt, error) {
	f.operations = append(f.operations, operation)
	transaction, err := operation.Prepare(nil)
	if err != nil {
		return ledger.Receipt{}, err
	}
	f.prepared = append(f.prepared, transaction)
	if f.submitErr != nil {
		return ledger.Receipt{}, f.submitErr
	}
	return f.receipt, nil
}

func (f *fakeLedger) Query(ctx context.Context, query ledger.ContractQuery) (ledger.CallResult, error) {
	f.queries = append(f.queries, query)
	result, ok := f.results[query.Function]
	if !ok {
		return ledger.CallResult{}, fmt.Errorf("no result for %s", query.Function)
	}
	return result, nil
}

func uintWord(value byte) []byte {
	word := make([]byte, 32)
	word[31] = value
	return word
}
