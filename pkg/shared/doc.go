// Package shared provides the pieces every other package in the module leans
// on: network normalization, Hedera client construction, key parsing, the
// logger, and the process-wide Config loaded from environment variables.
//
// # Environment Variables
//
// ConfigFromEnv loads a .env file found in the working directory or any parent
// and then reads ACCOUNT_ID, ACCOUNT_PRIVATE_KEY, ACCOUNT{1,2,3}_ID,
// ACCOUNT{1,2,3}_PRIVATE_KEY, MST_TOKEN_ADDRESS, MPT_TOKEN_ADDRESS,
// REWARD_DISTRIBUTION_CONTRACT_ID, TREASURY_ADDRESS, FEE_RECIPIENT and friends.
// Commands call Config.Require with the keys they need so that a missing
// variable fails before anything is submitted.
package shared
