package contractparams

import (
	"fmt"
	"strconv"
	"strings"
)

// ArgsDoc describes the "kind:value" syntax accepted by ParseArgs.
const ArgsDoc = `   Arguments use "kind:value" syntax where kind is one of 'address',
   'uint64', 'uint256', 'address[]' or 'string'.
    * 'address' values are 0x-prefixed 20-byte hex strings or shard.realm.num
      IDs, which are converted to their long-zero EVM address.
    * 'uint64' and 'uint256' values are decimal integers; uint256 also takes
      0x-prefixed hex.
    * 'address[]' values are comma-separated addresses.
    * 'string' values are taken literally, colons included.

   Examples:
    * 'uint64:100' stakes 100 units
    * 'address:0.0.1234' is 0x0000000000000000000004d20000000000000000
    * 'uint256:10' is the fee percentage passed to the constructor`

// ParseArgs parses command line arguments into params.
func ParseArgs(args []string) ([]Param, error) {
	builder := NewBuilder()
	for index, arg := range args {
		kind, value, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("argument %d %q: expected kind:value", index, arg)
		}
		switch Kind(strings.ToLower(strings.TrimSpace(kind))) {
		case KindAddress:
			builder.Address(value)
		case KindAddressArray:
			builder.AddressArray(splitList(value)...)
		case KindUint64:
			parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
			if err != nil {
				return nil, &InvalidParamError{Index: index, Kind: KindUint64, Value: value, Reason: err.Error()}
			}
			builder.Uint64(parsed)
		case KindUint256:
			builder.Uint256String(value)
		case KindString:
			builder.String(value)
		default:
			return nil, fmt.Errorf("argument %d %q: unknown kind %q", index, arg, kind)
		}
		if err := builder.Err(); err != nil {
			return nil, err
		}
	}
	return builder.Params(), nil
}

func splitList(value string) []string {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	if strings.TrimSpace(trimmed) == "" {
		return nil
	}
	parts := strings.Split(trimmed, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
