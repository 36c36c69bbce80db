package ledger

import (
	"errors"
	"fmt"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/require"
)

func TestClassifyPrecheckFee(t *testing.T) {
	err := Classify("stake", hedera.ErrHederaPreCheckStatus{Status: hedera.StatusInsufficientTxFee})

	var feeErr *InsufficientFeeError
	require.ErrorAs(t, err, &feeErr)
	require.Equal(t, "stake", feeErr.Operation)
	require.Equal(t, hedera.StatusInsufficientTxFee.String(), feeErr.Status)
}

func TestClassifyPayerBalance(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", hedera.ErrHederaPreCheckStatus{Status: hedera.StatusInsufficientPayerBalance})
	err := Classify("mint", wrapped)

	var feeErr *InsufficientFeeError
	require.ErrorAs(t, err, &feeErr)
}

func TestClassifyReceiptRejection(t *testing.T) {
	err := Classify("unstake", hedera.ErrHederaReceiptStatus{Status: hedera.StatusContractRevertExecuted})

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, hedera.StatusContractRevertExecuted.String(), rejected.Status)
	require.Contains(t, rejected.Error(), "unstake")
}

func TestClassifyNetwork(t *testing.T) {
	cause := errors.New("connection refused")
	err := Classify("claim", cause)

	var networkErr *NetworkError
	require.ErrorAs(t, err, &networkErr)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "claim")
}

func TestClassifyKeepsClassified(t *testing.T) {
	original := &RejectedError{Operation: "stake", Status: "CONTRACT_REVERT_EXECUTED"}
	require.Same(t, original, Classify("other", original))
	require.NoError(t, Classify("noop", nil))
}

func TestRejectedErrorMessage(t *testing.T) {
	err := &RejectedError{Operation: "stake", Status: "INVALID_SIGNATURE", TransactionID: "0.0.2@1.2"}
	require.Equal(t, "stake: rejected with status INVALID_SIGNATURE (tx 0.0.2@1.2)", err.Error())

	err.TransactionID = ""
	require.Equal(t, "stake: rejected with status INVALID_SIGNATURE", err.Error())
}
