package contractparams

import (
	"errors"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/holiman/uint256"

	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
)

// Builder collects typed arguments. Invalid arguments are recorded and the
// chain keeps going; Build reports the first one.
type Builder struct {
	params []Param
	errs   []error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Address accepts a 0x-prefixed hex address or a shard.realm.num ID.
func (b *Builder) Address(raw string) *Builder {
	address, err := evmaddress.Resolve(raw)
	if err != nil {
		return b.fail(KindAddress, raw, err)
	}
	return b.Add(Param{Kind: KindAddress, Address: address})
}

func (b *Builder) Uint64(value uint64) *Builder {
	return b.Add(Param{Kind: KindUint64, Uint64: value})
}

func (b *Builder) Uint256(value *uint256.Int) *Builder {
	if value == nil {
		return b.fail(KindUint256, "<nil>", errors.New("value is required"))
	}
	return b.Add(Param{Kind: KindUint256, Uint256: value.Clone()})
}

// Uint256String accepts a decimal or 0x-prefixed hex number.
func (b *Builder) Uint256String(raw string) *Builder {
	value, err := parseUint256(raw)
	if err != nil {
		return b.fail(KindUint256, raw, err)
	}
	return b.Add(Param{Kind: KindUint256, Uint256: value})
}

func (b *Builder) AddressArray(raw ...string) *Builder {
	addresses := make([]evmaddress.HexAddress, 0, len(raw))
	for _, item := range raw {
		address, err := evmaddress.Resolve(item)
		if err != nil {
			return b.fail(KindAddressArray, item, err)
		}
		addresses = append(addresses, address)
	}
	return b.Add(Param{Kind: KindAddressArray, Addresses: addresses})
}

func (b *Builder) String(value string) *Builder {
	return b.Add(Param{Kind: KindString, Text: value})
}

// Add appends an already constructed Param after validating it.
func (b *Builder) Add(param Param) *Builder {
	if err := Validate(param); err != nil {
		b.errs = append(b.errs, annotate(err, len(b.params)))
	}
	b.params = append(b.params, param)
	return b
}

func (b *Builder) fail(kind Kind, value string, err error) *Builder {
	b.errs = append(b.errs, &InvalidParamError{
		Index:  len(b.params),
		Kind:   kind,
		Value:  value,
		Reason: err.Error(),
	})
	b.params = append(b.params, Param{Kind: kind})
	return b
}

// Params returns the collected arguments in order.
func (b *Builder) Params() []Param {
	out := make([]Param, len(b.params))
	copy(out, b.params)
	return out
}

// Err joins every recorded error.
func (b *Builder) Err() error {
	return errors.Join(b.errs...)
}

// Build returns SDK function parameters, or the first recorded error.
func (b *Builder) Build() (*hedera.ContractFunctionParameters, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	return Encode(b.params)
}

// Validate checks that param is well formed for its kind.
func Validate(param Param) error {
	switch param.Kind {
	case KindAddress:
		_, err := evmaddress.ParseHexAddress(param.Address.String())
		return err
	case KindAddressArray:
		for _, address := range param.Addresses {
			if _, err := evmaddress.ParseHexAddress(address.String()); err != nil {
				return err
			}
		}
		return nil
	case KindUint256:
		if param.Uint256 == nil {
			return errors.New("uint256 value is required")
		}
		return nil
	case KindUint64, KindString:
		return nil
	default:
		return fmt.Errorf("unsupported parameter kind %q", param.Kind)
	}
}

// Encode converts validated params to SDK function parameters.
func Encode(params []Param) (*hedera.ContractFunctionParameters, error) {
	encoded := hedera.NewContractFunctionParameters()
	for index, param := range params {
		if err := Validate(param); err != nil {
			return nil, annotate(err, index)
		}

		var err error
		switch param.Kind {
		case KindAddress:
			encoded, err = encoded.AddAddress(param.Address.Digits())
		case KindAddressArray:
			digits := make([]string, 0, len(param.Addresses))
			for _, address := range param.Addresses {
				digits = append(digits, address.Digits())
			}
			encoded, err = encoded.AddAddressArray(digits)
		case KindUint64:
			encoded = encoded.AddUint64(param.Uint64)
		case KindUint256:
			word := param.Uint256.Bytes32()
			encoded = encoded.AddUint256(word[:])
		case KindString:
			encoded = encoded.AddString(param.Text)
		}
		if err != nil {
			return nil, annotate(err, index)
		}
	}
	return encoded, nil
}

func annotate(err error, index int) error {
	var invalid *InvalidParamError
	if errors.As(err, &invalid) {
		return err
	}
	return fmt.Errorf("parameter %d: %w", index, err)
}

func parseUint256(raw string) (*uint256.Int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, errors.New("value is required")
	}
	if strings.HasPrefix(trimmed, "-") {
		return nil, errors.New("value must be non-negative")
	}
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		if len(trimmed) == 2 {
			return nil, errors.New("hex value has no digits")
		}
		digits := strings.TrimLeft(trimmed[2:], "0")
		if digits == "" {
			return uint256.NewInt(0), nil
		}
		return uint256.FromHex("0x" + digits)
	}
	return uint256.FromDecimal(trimmed)
}
