package balance

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/hashgraph-online/reward-distribution-go/pkg/mirror"
)

// DefaultScale is the display multiplier the staking dashboards apply after
// dividing by 10^decimals.
const DefaultScale = 10000

var (
	ErrInvalidDecimals = errors.New("token decimals must be non-negative")
	ErrInvalidBalance  = errors.New("token balance must be non-negative")
)

// Entry is one token balance as reported by the mirror node, in the token's
// smallest unit.
type Entry struct {
	TokenID string
	Balance int64
}

// Sample is the token balance list of one account at one point in time.
type Sample struct {
	AccountID string
	Timestamp string
	Tokens    []Entry
}

// Normalize converts a raw balance to display units: raw / 10^decimals * scale.
// No rounding is applied.
func Normalize(raw int64, decimals int, scale float64) (float64, error) {
	if decimals < 0 {
		return 0, ErrInvalidDecimals
	}
	if raw < 0 {
		return 0, ErrInvalidBalance
	}
	return float64(raw) / math.Pow10(decimals) * scale, nil
}

// Lookup returns the raw balance for tokenID. The second result is false when
// the sample has no entry for the token.
func (s Sample) Lookup(tokenID string) (int64, bool) {
	normalized := strings.TrimSpace(tokenID)
	for _, entry := range s.Tokens {
		if entry.TokenID == normalized {
			return entry.Balance, true
		}
	}
	return 0, false
}

// NormalizeSample normalizes the entry for tokenID. A missing entry yields a
// nil value and a nil error; it is neither zero nor a failure.
func NormalizeSample(sample Sample, tokenID string, decimals int, scale float64) (*float64, error) {
	raw, ok := sample.Lookup(tokenID)
	if !ok {
		return nil, nil
	}
	value, err := Normalize(raw, decimals, scale)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// SampleFromMirror picks the entry for accountID out of a balances response.
func SampleFromMirror(response mirror.BalancesResponse, accountID string) (Sample, bool) {
	normalized := strings.TrimSpace(accountID)
	for _, entry := range response.Balances {
		if entry.Account != normalized {
			continue
		}
		sample := Sample{
			AccountID: entry.Account,
			Timestamp: response.Timestamp,
			Tokens:    make([]Entry, 0, len(entry.Tokens)),
		}
		for _, token := range entry.Tokens {
			sample.Tokens = append(sample.Tokens, Entry{TokenID: token.TokenID, Balance: token.Balance})
		}
		return sample, true
	}
	return Sample{}, false
}

// Format renders a normalized value for logs; nil prints as "n/a".
func Format(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
