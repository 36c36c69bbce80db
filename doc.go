// Package reward_distribution_go is a Go toolkit for running a token staking
// and reward distribution deployment on the Hedera network. It covers the
// pieces an operator needs around the RewardDistribution and FeeToken
// contracts: address conversion, token setup, contract deployment and calls,
// mirror node balance reads and scripted staking sequences.
//
// # Packages
//
//   - evmaddress: shard.realm.num IDs to long-zero EVM addresses and back, ECDSA aliases
//   - balance: mirror node balances normalized by token decimals and a display scale
//   - ledger: signer-aware transaction submission with classified errors
//   - contractparams: typed, validated contract arguments and ABI calldata
//   - tokens: MST/MPT creation, association, allowances, minting and transfers
//   - accounts: ECDSA alias account creation and mirror verification
//   - staking: RewardDistribution calls, views and deployment
//   - artifacts: bytecode and ABI loading, including brotli compressed bytecode
//   - scenario: ordered steps with a per-step run report and YAML scenario files
//   - mirror: read-only mirror node REST client
//   - shared: network selection, environment configuration, keys and logging
//
// The rewardctl command under cmd/ wires every package behind a cobra CLI.
//
// # Installation
//
//	go get github.com/hashgraph-online/reward-distribution-go@latest
package reward_distribution_go
