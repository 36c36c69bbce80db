// Package tokens builds and submits the fungible token transactions used to
// set up staking: create, associate, allowance approval, mint and transfer.
package tokens
