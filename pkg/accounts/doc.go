// Package accounts creates ECDSA accounts with EVM address aliases for the
// staking participants and checks them against the mirror node.
package accounts
