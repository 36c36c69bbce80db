package balance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hashgraph-online/reward-distribution-go/pkg/mirror"
)

type fakeSource struct {
	mu          sync.Mutex
	balances    []int64
	call        int
	tokens      map[string]*mirror.TokenInfo
	tokenCalls  int
	balancesErr error
}

func (f *fakeSource) GetBalances(ctx context.Context, accountID string) (mirror.BalancesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balancesErr != nil {
		return mirror.BalancesResponse{}, f.balancesErr
	}
	index := f.call
	if index >= len(f.balances) {
		index = len(f.balances) - 1
	}
	f.call++
	return mirror.BalancesResponse{
		Balances: []mirror.BalanceEntry{{
			Account: accountID,
			Tokens:  []mirror.TokenBalance{{TokenID: "0.0.2001", Balance: f.balances[index]}},
		}},
	}, nil
}

func (f *fakeSource) GetToken(ctx context.Context, tokenID string) (*mirror.TokenInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokenCalls++
	return f.tokens[tokenID], nil
}

func newFakeSource(balances ...int64) *fakeSource {
	return &fakeSource{
		balances: balances,
		tokens: map[string]*mirror.TokenInfo{
			"0.0.2001": {TokenID: "0.0.2001", Decimals: "2"},
			"0.0.2002": {TokenID: "0.0.2002", Decimals: "x"},
		},
	}
}

func TestNewReaderRequiresSource(t *testing.T) {
	_, err := NewReader(ReaderConfig{})
	require.Error(t, err)

	_, err = NewReader(ReaderConfig{Source: newFakeSource(1), Scale: -1})
	require.Error(t, err)

	reader, err := NewReader(ReaderConfig{Source: newFakeSource(1)})
	require.NoError(t, err)
	require.EqualValues(t, DefaultScale, reader.Scale())
}

func TestReaderTokenBalance(t *testing.T) {
	source := newFakeSource(12345)
	reader, err := NewReader(ReaderConfig{Source: source})
	require.NoError(t, err)

	value, err := reader.TokenBalance(context.Background(), "0.0.1001", "0.0.2001")
	require.NoError(t, err)
	require.NotNil(t, value)
	require.InDelta(t, 1234500.0, *value, 1e-6)

	value, err = reader.TokenBalance(context.Background(), "0.0.1001", "0.0.7777")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestReaderTokenBalanceWithoutTokenInfo(t *testing.T) {
	source := newFakeSource(12345)
	delete(source.tokens, "0.0.2001")
	reader, err := NewReader(ReaderConfig{Source: source})
	require.NoError(t, err)

	value, err := reader.TokenBalance(context.Background(), "0.0.1001", "0.0.2001")
	require.NoError(t, err)
	require.Nil(t, value)

	source.tokens["0.0.2001"] = &mirror.TokenInfo{TokenID: "0.0.2001"}
	value, err = reader.TokenBalance(context.Background(), "0.0.1001", "0.0.2001")
	require.NoError(t, err)
	require.Nil(t, value)

	_, err = reader.Decimals(context.Background(), "0.0.2001")
	require.ErrorIs(t, err, ErrNoDecimals)
}

func TestReaderCachesDecimals(t *testing.T) {
	source := newFakeSource(100)
	reader, err := NewReader(ReaderConfig{Source: source})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := reader.TokenBalance(context.Background(), "0.0.1001", "0.0.2001")
		require.NoError(t, err)
	}
	require.Equal(t, 1, source.tokenCalls)
}

func TestReaderDecimalsErrors(t *testing.T) {
	reader, err := NewReader(ReaderConfig{Source: newFakeSource(1)})
	require.NoError(t, err)

	_, err = reader.Decimals(context.Background(), "0.0.404")
	require.ErrorIs(t, err, ErrTokenNotFound)

	_, err = reader.Decimals(context.Background(), "0.0.2002")
	require.Error(t, err)
}

func TestReaderPropagatesSourceError(t *testing.T) {
	source := newFakeSource(1)
	source.balancesErr = errors.New("boom")
	reader, err := NewReader(ReaderConfig{Source: source})
	require.NoError(t, err)

	_, err = reader.TokenBalance(context.Background(), "0.0.1001", "0.0.2001")
	require.ErrorContains(t, err, "boom")
}

func TestWaitForChange(t *testing.T) {
	source := newFakeSource(100, 100, 250)
	reader, err := NewReader(ReaderConfig{
		Source:       source,
		Scale:        1,
		PollInterval: time.Millisecond,
		PollTimeout:  time.Second,
	})
	require.NoError(t, err)

	previous := 1.0
	value, err := reader.WaitForChange(context.Background(), "0.0.1001", "0.0.2001", &previous)
	require.NoError(t, err)
	require.NotNil(t, value)
	require.InDelta(t, 2.5, *value, 1e-9)
	require.Equal(t, 3, source.call)
}

func TestWaitForChangeGivesUp(t *testing.T) {
	source := newFakeSource(100)
	reader, err := NewReader(ReaderConfig{
		Source:       source,
		Scale:        1,
		PollInterval: time.Millisecond,
		PollTimeout:  20 * time.Millisecond,
	})
	require.NoError(t, err)

	previous := 1.0
	value, err := reader.WaitForChange(context.Background(), "0.0.1001", "0.0.2001", &previous)
	require.ErrorIs(t, err, ErrUnchanged)
	require.NotNil(t, value)
	require.InDelta(t, 1.0, *value, 1e-9)
}

func TestWaitForChangeStopsOnPermanentError(t *testing.T) {
	source := newFakeSource(100)
	source.balancesErr = &mirror.StatusError{StatusCode: 400, Body: "bad request"}
	reader, err := NewReader(ReaderConfig{
		Source:       source,
		PollInterval: time.Millisecond,
		PollTimeout:  time.Second,
	})
	require.NoError(t, err)

	_, err = reader.WaitForChange(context.Background(), "0.0.1001", "0.0.2001", nil)
	var statusErr *mirror.StatusError
	require.ErrorAs(t, err, &statusErr)
}

func TestSnapshot(t *testing.T) {
	reader, err := NewReader(ReaderConfig{Source: newFakeSource(500), Scale: 1})
	require.NoError(t, err)

	readings := reader.Snapshot(context.Background(), []Pair{
		{Label: "account1 MST", AccountID: "0.0.1001", TokenID: "0.0.2001"},
		{Label: "account1 MPT", AccountID: "0.0.1001", TokenID: "0.0.3001"},
	})
	require.Len(t, readings, 2)
	require.NoError(t, readings[0].Err)
	require.NotNil(t, readings[0].Value)
	require.InDelta(t, 5.0, *readings[0].Value, 1e-9)
	require.NoError(t, readings[1].Err)
	require.Nil(t, readings[1].Value)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	readings = reader.Snapshot(ctx, []Pair{{AccountID: "0.0.1001", TokenID: "0.0.2001"}})
	require.ErrorIs(t, readings[0].Err, context.Canceled)
}
