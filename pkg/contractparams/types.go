package contractparams

import (
	"strings"

	"github.com/holiman/uint256"

	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
)

// Kind is the ABI type of a Param.
type Kind string

const (
	KindAddress      Kind = "address"
	KindUint64       Kind = "uint64"
	KindUint256      Kind = "uint256"
	KindAddressArray Kind = "address[]"
	KindString       Kind = "string"
)

// Param is one contract function argument. Only the field matching Kind is set.
type Param struct {
	Kind      Kind
	Address   evmaddress.HexAddress
	Addresses []evmaddress.HexAddress
	Uint64    uint64
	Uint256   *uint256.Int
	Text      string
}

// Value renders the argument for logs.
func (p Param) Value() string {
	switch p.Kind {
	case KindAddress:
		return p.Address.String()
	case KindUint64:
		return uint256.NewInt(p.Uint64).Dec()
	case KindUint256:
		if p.Uint256 == nil {
			return ""
		}
		return p.Uint256.Dec()
	case KindAddressArray:
		values := make([]string, 0, len(p.Addresses))
		for _, address := range p.Addresses {
			values = append(values, address.String())
		}
		return "[" + strings.Join(values, ",") + "]"
	case KindString:
		return p.Text
	default:
		return ""
	}
}

func (p Param) String() string {
	return string(p.Kind) + ":" + p.Value()
}

// Signature returns the canonical function signature, e.g. "stakeTokens(uint64)".
func Signature(function string, params []Param) string {
	kinds := make([]string, 0, len(params))
	for _, param := range params {
		kinds = append(kinds, string(param.Kind))
	}
	return function + "(" + strings.Join(kinds, ",") + ")"
}
