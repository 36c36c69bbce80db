package balance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/hashgraph-online/reward-distribution-go/pkg/mirror"
)

const (
	defaultDecimalsCacheSize = 64
	defaultPollInterval      = time.Second
	defaultPollTimeout       = 30 * time.Second
)

var (
	// ErrUnchanged is returned by WaitForChange when the polling budget ends
	// before the balance moves.
	ErrUnchanged = errors.New("token balance did not change")
	// ErrTokenNotFound is returned when the mirror node has no metadata for a token.
	ErrTokenNotFound = errors.New("token not found on mirror node")
	// ErrNoDecimals is returned when the token metadata carries no decimals.
	ErrNoDecimals = errors.New("token metadata has no decimals")
)

// Source is the subset of the mirror client the reader needs.
type Source interface {
	GetBalances(ctx context.Context, accountID string) (mirror.BalancesResponse, error)
	GetToken(ctx context.Context, tokenID string) (*mirror.TokenInfo, error)
}

type ReaderConfig struct {
	Source       Source
	Scale        float64
	CacheSize    int
	PollInterval time.Duration
	PollTimeout  time.Duration
	Logger       *zap.Logger
}

// Reader reads normalized token balances through the mirror node.
type Reader struct {
	source       Source
	scale        float64
	decimals     *lru.Cache
	pollInterval time.Duration
	pollTimeout  time.Duration
	log          *zap.Logger
}

// Pair names one account/token combination to read.
type Pair struct {
	Label     string
	AccountID string
	TokenID   string
}

// Reading is the outcome of reading one Pair. Value is nil when the account
// holds no entry for the token.
type Reading struct {
	Pair
	Value *float64
	Err   error
}

func NewReader(config ReaderConfig) (*Reader, error) {
	if config.Source == nil {
		return nil, fmt.Errorf("balance source is required")
	}
	scale := config.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if scale < 0 {
		return nil, fmt.Errorf("balance scale must be positive, got %v", scale)
	}
	size := config.CacheSize
	if size <= 0 {
		size = defaultDecimalsCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create decimals cache: %w", err)
	}
	interval := config.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	timeout := config.PollTimeout
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reader{
		source:       config.Source,
		scale:        scale,
		decimals:     cache,
		pollInterval: interval,
		pollTimeout:  timeout,
		log:          logger,
	}, nil
}

// Scale returns the display multiplier in use.
func (r *Reader) Scale() float64 {
	return r.scale
}

// Decimals returns the token's decimals, cached after the first lookup.
func (r *Reader) Decimals(ctx context.Context, tokenID string) (int, error) {
	normalized := strings.TrimSpace(tokenID)
	if cached, ok := r.decimals.Get(normalized); ok {
		return cached.(int), nil
	}

	token, err := r.source.GetToken(ctx, normalized)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch token %s: %w", normalized, err)
	}
	if token == nil {
		return 0, fmt.Errorf("%w: %s", ErrTokenNotFound, normalized)
	}
	rawDecimals := strings.TrimSpace(token.Decimals)
	if rawDecimals == "" {
		return 0, fmt.Errorf("%w: %s", ErrNoDecimals, normalized)
	}
	decimals, err := strconv.Atoi(rawDecimals)
	if err != nil {
		return 0, fmt.Errorf("token %s has invalid decimals %q: %w", normalized, token.Decimals, err)
	}
	if decimals < 0 {
		return 0, ErrInvalidDecimals
	}

	r.decimals.Add(normalized, decimals)
	return decimals, nil
}

// Sample fetches the raw balance sample of accountID. The second result is
// false when the mirror node lists no balance entry for the account.
func (r *Reader) Sample(ctx context.Context, accountID string) (Sample, bool, error) {
	response, err := r.source.GetBalances(ctx, accountID)
	if err != nil {
		return Sample{}, false, fmt.Errorf("failed to fetch balances for %s: %w", accountID, err)
	}
	sample, ok := SampleFromMirror(response, accountID)
	return sample, ok, nil
}

// TokenBalance returns the normalized balance of tokenID held by accountID, or
// nil when the account has no entry for the token or the mirror node has no
// decimals for it.
func (r *Reader) TokenBalance(ctx context.Context, accountID string, tokenID string) (*float64, error) {
	sample, ok, err := r.Sample(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if _, held := sample.Lookup(tokenID); !held {
		return nil, nil
	}
	decimals, err := r.Decimals(ctx, tokenID)
	if errors.Is(err, ErrTokenNotFound) || errors.Is(err, ErrNoDecimals) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return NormalizeSample(sample, tokenID, decimals, r.scale)
}

// WaitForChange polls until the balance differs from previous. Mirror nodes
// lag consensus by a few seconds, so a read right after a receipt may still
// show the old value.
func (r *Reader) WaitForChange(ctx context.Context, accountID string, tokenID string, previous *float64) (*float64, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.pollInterval
	policy.MaxInterval = 4 * r.pollInterval
	policy.MaxElapsedTime = r.pollTimeout

	var current *float64
	attempts := 0
	operation := func() error {
		attempts++
		value, err := r.TokenBalance(ctx, accountID, tokenID)
		if err != nil {
			var statusErr *mirror.StatusError
			if errors.Is(err, ErrInvalidDecimals) ||
				(errors.As(err, &statusErr) && statusErr.StatusCode < 500) {
				return backoff.Permanent(err)
			}
			return err
		}
		current = value
		if sameValue(previous, value) {
			return ErrUnchanged
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(policy, ctx))
	r.log.Debug("balance poll finished",
		zap.String("account", accountID),
		zap.String("token", tokenID),
		zap.Int("attempts", attempts),
		zap.String("value", Format(current)),
		zap.Error(err),
	)
	if err != nil {
		return current, err
	}
	return current, nil
}

// Snapshot reads every pair in order. Individual failures are kept on the
// reading and do not stop the remaining reads.
func (r *Reader) Snapshot(ctx context.Context, pairs []Pair) []Reading {
	readings := make([]Reading, 0, len(pairs))
	for _, pair := range pairs {
		reading := Reading{Pair: pair}
		if err := ctx.Err(); err != nil {
			reading.Err = err
		} else {
			reading.Value, reading.Err = r.TokenBalance(ctx, pair.AccountID, pair.TokenID)
		}
		readings = append(readings, reading)
	}
	return readings
}

func sameValue(left *float64, right *float64) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return *left == *right
}
