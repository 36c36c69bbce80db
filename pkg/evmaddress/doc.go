// Package evmaddress converts between ledger IDs (shard.realm.num) and the
// 20-byte hex addresses that EVM contract calls take.
//
// Encode packs the three components as big-endian uint32 values into the first
// twelve bytes of the address and leaves the rest zero:
//
//	addr, err := evmaddress.EncodeString("0.0.1234")
//	// addr == "0x0000000000000000000004d20000000000000000"
//
// A component above 4294967295 fails with *OutOfRangeComponentError instead of
// being truncated.
package evmaddress
