// Package contractparams builds typed contract function arguments.
//
// Each argument is a Param tagged with its ABI kind. A Builder validates
// widths as arguments are added (20-byte addresses, uint256 range) and turns
// the list into SDK ContractFunctionParameters:
//
//	params, err := contractparams.NewBuilder().
//		Uint64(100).
//		Address("0.0.1234").
//		Build()
package contractparams
