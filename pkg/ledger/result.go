package ledger

import (
	"fmt"
	"math"

	"github.com/holiman/uint256"
)

const wordSize = 32

// CallResult holds the ABI-encoded return data of a contract call.
type CallResult struct {
	Data []byte
}

// Word returns the 32-byte word at index.
func (r CallResult) Word(index int) ([]byte, error) {
	start := index * wordSize
	if index < 0 || start+wordSize > len(r.Data) {
		return nil, fmt.Errorf("result has no word at index %d (%d bytes)", index, len(r.Data))
	}
	return r.Data[start : start+wordSize], nil
}

// Uint256 decodes the word at index as an unsigned integer.
func (r CallResult) Uint256(index int) (*uint256.Int, error) {
	word, err := r.Word(index)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(word), nil
}

// Uint64 decodes the word at index and fails if it does not fit 64 bits.
func (r CallResult) Uint64(index int) (uint64, error) {
	value, err := r.Uint256(index)
	if err != nil {
		return 0, err
	}
	if !value.IsUint64() {
		return 0, fmt.Errorf("result word %d overflows uint64: %s", index, value.Dec())
	}
	return value.Uint64(), nil
}

// String decodes a dynamic string whose offset is stored at index.
func (r CallResult) String(index int) (string, error) {
	offset, err := r.Uint64(index)
	if err != nil {
		return "", err
	}
	if offset%wordSize != 0 || offset > math.MaxInt32 {
		return "", fmt.Errorf("invalid string offset %d", offset)
	}
	length, err := r.Uint64(int(offset / wordSize))
	if err != nil {
		return "", err
	}
	start := offset + wordSize
	if length > uint64(len(r.Data)) || start+length > uint64(len(r.Data)) {
		return "", fmt.Errorf("string of length %d exceeds result data", length)
	}
	return string(r.Data[start : start+length]), nil
}
