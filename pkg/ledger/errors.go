package ledger

import (
	"errors"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// NetworkError means the submission or query could not reach consensus nodes.
// Whether a submission took effect is unknown.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// InsufficientFeeError means the payer could not cover the transaction fee.
type InsufficientFeeError struct {
	Operation string
	Status    string
	Err       error
}

func (e *InsufficientFeeError) Error() string {
	return fmt.Sprintf("%s: insufficient fee: %s", e.Operation, e.Status)
}

func (e *InsufficientFeeError) Unwrap() error {
	return e.Err
}

// RejectedError carries the non-success status reported at precheck or consensus.
type RejectedError struct {
	Operation     string
	Status        string
	TransactionID string
	Err           error
}

func (e *RejectedError) Error() string {
	if e.TransactionID != "" {
		return fmt.Sprintf("%s: rejected with status %s (tx %s)", e.Operation, e.Status, e.TransactionID)
	}
	return fmt.Sprintf("%s: rejected with status %s", e.Operation, e.Status)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// Classify maps an SDK error onto the ledger error taxonomy.
func Classify(operation string, err error) error {
	if err == nil {
		return nil
	}

	var (
		networkErr  *NetworkError
		feeErr      *InsufficientFeeError
		rejectedErr *RejectedError
	)
	if errors.As(err, &networkErr) || errors.As(err, &feeErr) || errors.As(err, &rejectedErr) {
		return err
	}

	var precheck hedera.ErrHederaPreCheckStatus
	if errors.As(err, &precheck) {
		return statusError(operation, precheck.Status, transactionIDString(precheck.TxID), err)
	}
	var receiptErr hedera.ErrHederaReceiptStatus
	if errors.As(err, &receiptErr) {
		return statusError(operation, receiptErr.Status, transactionIDString(receiptErr.TxID), err)
	}

	return &NetworkError{Operation: operation, Err: err}
}

func statusError(operation string, status hedera.Status, transactionID string, err error) error {
	if isFeeStatus(status) {
		return &InsufficientFeeError{Operation: operation, Status: status.String(), Err: err}
	}
	return &RejectedError{
		Operation:     operation,
		Status:        status.String(),
		TransactionID: transactionID,
		Err:           err,
	}
}

func isFeeStatus(status hedera.Status) bool {
	switch status {
	case hedera.StatusInsufficientTxFee, hedera.StatusInsufficientPayerBalance:
		return true
	default:
		return false
	}
}

func transactionIDString(id hedera.TransactionID) string {
	if id.AccountID == nil || id.ValidStart == nil {
		return ""
	}
	return id.String()
}
