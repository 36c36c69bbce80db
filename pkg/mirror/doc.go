// Package mirror is a small read-only client for the Hedera mirror node REST
// API. It covers the lookups the staking tooling needs: account balances,
// token metadata, accounts, contracts and transaction records.
//
// Lookups of a single entity return a nil pointer and a nil error when the
// mirror node answers 404. Other non-2xx answers surface as *StatusError.
package mirror
