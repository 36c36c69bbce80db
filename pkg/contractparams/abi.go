package contractparams

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Selector returns the 4-byte function selector for signature.
func Selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

// PackArguments ABI-encodes params without a selector.
func PackArguments(params []Param) ([]byte, error) {
	arguments := make(abi.Arguments, 0, len(params))
	values := make([]interface{}, 0, len(params))
	for index, param := range params {
		if err := Validate(param); err != nil {
			return nil, annotate(err, index)
		}
		typ, err := abi.NewType(string(param.Kind), "", nil)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", index, err)
		}
		arguments = append(arguments, abi.Argument{Type: typ})
		values = append(values, goValue(param))
	}
	return arguments.Pack(values...)
}

// Calldata returns selector plus encoded arguments, the exact bytes a
// ContractExecuteTransaction carries for function(params...).
func Calldata(function string, params []Param) ([]byte, error) {
	packed, err := PackArguments(params)
	if err != nil {
		return nil, err
	}
	return append(Selector(Signature(function, params)), packed...), nil
}

func goValue(param Param) interface{} {
	switch param.Kind {
	case KindAddress:
		return common.HexToAddress(param.Address.String())
	case KindAddressArray:
		addresses := make([]common.Address, 0, len(param.Addresses))
		for _, address := range param.Addresses {
			addresses = append(addresses, common.HexToAddress(address.String()))
		}
		return addresses
	case KindUint64:
		return param.Uint64
	case KindUint256:
		return param.Uint256.ToBig()
	default:
		return param.Text
	}
}
