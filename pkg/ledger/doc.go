// Package ledger defines the Client used by every state-changing operation
// and its Hedera SDK implementation.
//
// Errors from Submit and Query are classified as *NetworkError,
// *InsufficientFeeError or *RejectedError. Nothing is retried.
package ledger
