package evmaddress

import (
	"errors"
	"fmt"
)

// ErrNotLedgerAddress is returned by Decode for addresses whose reserved bytes are set.
var ErrNotLedgerAddress = errors.New("address does not encode a ledger ID")

// OutOfRangeComponentError reports an ID component that does not fit in 32 bits.
type OutOfRangeComponentError struct {
	Field string
	Value string
}

func (e *OutOfRangeComponentError) Error() string {
	return fmt.Sprintf("%s component %s exceeds 4294967295", e.Field, e.Value)
}

// MalformedIDError reports input that is not shard.realm.num.
type MalformedIDError struct {
	Input  string
	Reason string
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("malformed ledger ID %q: %s", e.Input, e.Reason)
}

// MalformedAddressError reports input that is not a 20-byte hex address.
type MalformedAddressError struct {
	Input  string
	Reason string
}

func (e *MalformedAddressError) Error() string {
	return fmt.Sprintf("malformed hex address %q: %s", e.Input, e.Reason)
}
