package tokens

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hashgraph-online/reward-distribution-go/pkg/balance"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
	"github.com/hashgraph-online/reward-distribution-go/pkg/mirror"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
)

func TestTokensIntegration_CreateAndRead(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION") != "1" {
		t.Skip("set RUN_INTEGRATION=1 to run live Hedera integration tests")
	}

	config, err := shared.ConfigFromEnv()
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	if err := config.Require(shared.EnvAccountID, shared.EnvAccountPrivateKey); err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	if strings.EqualFold(config.Network, shared.NetworkMainnet) && os.Getenv("ALLOW_MAINNET_INTEGRATION") != "1" {
		t.Skip("resolved mainnet credentials; set ALLOW_MAINNET_INTEGRATION=1 to allow live mainnet writes")
	}

	h, err := ledger.NewHedera(config, nil)
	if err != nil {
		t.Fatalf("failed to create ledger client: %v", err)
	}
	defer h.Close()

	client, err := NewClient(h, h, config.Network)
	if err != nil {
		t.Fatalf("failed to create token client: %v", err)
	}

	ctx := context.Background()
	mst, mpt, err := client.CreateStakingTokens(ctx, shared.SignerOperator)
	if err != nil {
		t.Fatalf("failed to create staking tokens: %v", err)
	}
	t.Logf("created MST %s and MPT %s", mst.TokenID, mpt.TokenID)

	mirrorClient, err := mirror.NewClient(mirror.Config{Network: config.Network, BaseURL: config.MirrorBaseURL})
	if err != nil {
		t.Fatalf("failed to create mirror client: %v", err)
	}
	reader, err := balance.NewReader(balance.ReaderConfig{
		Source:       mirrorClient,
		Scale:        config.BalanceScale,
		PollInterval: 2 * time.Second,
		PollTimeout:  time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create balance reader: %v", err)
	}

	value, err := reader.WaitForChange(ctx, config.Operator.AccountID, mst.TokenID, nil)
	if err != nil {
		t.Fatalf("MST balance never appeared on the mirror node: %v", err)
	}
	expected := float64(DefaultInitialSupply) / 100 * config.BalanceScale
	if *value != expected {
		t.Fatalf("unexpected MST balance: got %v, want %v", *value, expected)
	}
}
