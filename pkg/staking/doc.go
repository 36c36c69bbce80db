// Package staking drives the reward distribution contract: deployment of the
// FeeToken and RewardDistribution contracts, the stake, unstake, transfer and
// claim calls, and the getStakes and getRewards views.
//
// Every call uses 3,000,000 gas and a 20 hbar fee cap unless configured
// otherwise. Transfer recipients are EVM addresses; ResolveTarget maps signer
// names and shard.realm.num IDs onto them.
package staking
