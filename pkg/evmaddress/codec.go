package evmaddress

import (
	"encoding/binary"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// AddressLength is the byte width of an EVM address.
const AddressLength = 20

const hexDigits = AddressLength * 2

// LedgerID is a shard.realm.num identifier of an account, token or contract.
type LedgerID struct {
	Shard uint64
	Realm uint64
	Num   uint64
}

// String returns the canonical shard.realm.num form.
func (id LedgerID) String() string {
	return strconv.FormatUint(id.Shard, 10) + "." +
		strconv.FormatUint(id.Realm, 10) + "." +
		strconv.FormatUint(id.Num, 10)
}

// HexAddress is a 0x-prefixed, lowercase, 40 digit hex address.
type HexAddress string

// String implements fmt.Stringer.
func (a HexAddress) String() string {
	return string(a)
}

// Digits returns the address without the 0x prefix.
func (a HexAddress) Digits() string {
	return strings.TrimPrefix(string(a), "0x")
}

// ParseLedgerID parses shard.realm.num. Components larger than uint64 are
// reported as out of range rather than malformed.
func ParseLedgerID(raw string) (LedgerID, error) {
	trimmed := strings.TrimSpace(raw)
	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return LedgerID{}, &MalformedIDError{Input: raw, Reason: "expected shard.realm.num"}
	}

	fields := [3]string{"shard", "realm", "num"}
	var values [3]uint64
	for index, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return LedgerID{}, &MalformedIDError{Input: raw, Reason: fields[index] + " must be a non-negative integer"}
		}
		value, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return LedgerID{}, &OutOfRangeComponentError{Field: fields[index], Value: part}
			}
			return LedgerID{}, &MalformedIDError{Input: raw, Reason: err.Error()}
		}
		values[index] = value
	}

	return LedgerID{Shard: values[0], Realm: values[1], Num: values[2]}, nil
}

// Encode packs shard, realm and num as big-endian uint32 values at offsets 0,
// 4 and 8 of a 20-byte buffer. Bytes 12 through 19 stay zero.
func Encode(id LedgerID) (HexAddress, error) {
	components := []struct {
		field string
		value uint64
	}{
		{"shard", id.Shard},
		{"realm", id.Realm},
		{"num", id.Num},
	}

	buf := make([]byte, AddressLength)
	for index, component := range components {
		if component.value > math.MaxUint32 {
			return "", &OutOfRangeComponentError{
				Field: component.field,
				Value: strconv.FormatUint(component.value, 10),
			}
		}
		binary.BigEndian.PutUint32(buf[index*4:], uint32(component.value))
	}

	return render(buf), nil
}

// EncodeString parses raw and encodes it.
func EncodeString(raw string) (HexAddress, error) {
	id, err := ParseLedgerID(raw)
	if err != nil {
		return "", err
	}
	return Encode(id)
}

// Decode reverses Encode.
func Decode(address HexAddress) (LedgerID, error) {
	normalized, err := ParseHexAddress(string(address))
	if err != nil {
		return LedgerID{}, err
	}
	buf, err := hexutil.Decode(string(normalized))
	if err != nil {
		return LedgerID{}, &MalformedAddressError{Input: string(address), Reason: err.Error()}
	}
	for _, b := range buf[12:] {
		if b != 0 {
			return LedgerID{}, ErrNotLedgerAddress
		}
	}

	return LedgerID{
		Shard: uint64(binary.BigEndian.Uint32(buf[0:4])),
		Realm: uint64(binary.BigEndian.Uint32(buf[4:8])),
		Num:   uint64(binary.BigEndian.Uint32(buf[8:12])),
	}, nil
}

// ParseHexAddress accepts 40 hex digits with or without 0x in any case and
// returns the canonical lowercase form.
func ParseHexAddress(raw string) (HexAddress, error) {
	trimmed := strings.TrimSpace(raw)
	digits := trimmed
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if len(digits) != hexDigits {
		return "", &MalformedAddressError{Input: raw, Reason: "expected 40 hex characters"}
	}
	buf, err := hexutil.Decode("0x" + digits)
	if err != nil {
		return "", &MalformedAddressError{Input: raw, Reason: err.Error()}
	}
	return render(buf), nil
}

// Resolve turns either a shard.realm.num ID or a hex address into a HexAddress.
func Resolve(raw string) (HexAddress, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.Count(trimmed, ".") == 2 {
		return EncodeString(trimmed)
	}
	return ParseHexAddress(trimmed)
}

// FromAccountID encodes an SDK account ID.
func FromAccountID(id hedera.AccountID) (HexAddress, error) {
	return Encode(LedgerID{Shard: id.Shard, Realm: id.Realm, Num: id.Account})
}

// FromTokenID encodes an SDK token ID.
func FromTokenID(id hedera.TokenID) (HexAddress, error) {
	return Encode(LedgerID{Shard: id.Shard, Realm: id.Realm, Num: id.Token})
}

// FromContractID encodes an SDK contract ID.
func FromContractID(id hedera.ContractID) (HexAddress, error) {
	return Encode(LedgerID{Shard: id.Shard, Realm: id.Realm, Num: id.Contract})
}

func render(buf []byte) HexAddress {
	digits := strings.TrimPrefix(hexutil.Encode(buf), "0x")
	if len(digits) < hexDigits {
		digits = strings.Repeat("0", hexDigits-len(digits)) + digits
	}
	return HexAddress("0x" + strings.ToLower(digits))
}
