// Package balance converts mirror node token balances into display units.
//
// Raw balances are integers in the token's smallest unit. Normalize divides by
// 10^decimals and multiplies by a display scale (DefaultScale unless
// configured). A token the account does not hold is reported as nil, never as
// zero.
package balance
