package ledger

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"
)

// Executable is satisfied by every SDK transaction and by ContractCreateFlow.
type Executable interface {
	Execute(client *hedera.Client) (hedera.TransactionResponse, error)
}

// Operation is one state-changing submission. Prepare receives the client of
// the named signer so it can freeze the transaction and add extra signatures.
type Operation struct {
	Name    string
	Signer  string
	Fields  []zap.Field
	Prepare func(client *hedera.Client) (Executable, error)
}

// ContractQuery is a read-only contract call paid by Signer.
type ContractQuery struct {
	Name           string
	Signer         string
	ContractID     string
	Function       string
	Params         *hedera.ContractFunctionParameters
	Gas            uint64
	MaxPaymentHbar float64
	Fields         []zap.Field
}

// Receipt is the consensus outcome of a submission. Created entity IDs are
// empty unless the transaction created one.
type Receipt struct {
	Status        string
	TransactionID string
	TokenID       string
	ContractID    string
	AccountID     string
}

// LogFields returns the non-empty receipt fields for structured logging.
func (r Receipt) LogFields() []zap.Field {
	fields := []zap.Field{zap.String("status", r.Status)}
	if r.TransactionID != "" {
		fields = append(fields, zap.String("tx", r.TransactionID))
	}
	if r.TokenID != "" {
		fields = append(fields, zap.String("token", r.TokenID))
	}
	if r.ContractID != "" {
		fields = append(fields, zap.String("contract", r.ContractID))
	}
	if r.AccountID != "" {
		fields = append(fields, zap.String("account", r.AccountID))
	}
	return fields
}

// ReceiptFromSDK flattens an SDK receipt.
func ReceiptFromSDK(transactionID hedera.TransactionID, receipt hedera.TransactionReceipt) Receipt {
	result := Receipt{
		Status:        receipt.Status.String(),
		TransactionID: transactionIDString(transactionID),
	}
	if receipt.TokenID != nil {
		result.TokenID = receipt.TokenID.String()
	}
	if receipt.ContractID != nil {
		result.ContractID = receipt.ContractID.String()
	}
	if receipt.AccountID != nil {
		result.AccountID = receipt.AccountID.String()
	}
	return result
}
