package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

type networkEndpoints struct {
	mirror    string
	newClient func() *hedera.Client
}

var endpoints = map[string]networkEndpoints{
	NetworkMainnet: {
		mirror:    "https://mainnet-public.mirrornode.hedera.com",
		newClient: hedera.ClientForMainnet,
	},
	NetworkTestnet: {
		mirror:    "https://testnet.mirrornode.hedera.com",
		newClient: hedera.ClientForTestnet,
	},
}

// NormalizeNetwork lower-cases and validates a network name. Empty means testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}
	if _, ok := endpoints[normalized]; !ok {
		return "", fmt.Errorf("unsupported network %q", network)
	}
	return normalized, nil
}

// NewHederaClient creates a client for the network without an operator. The
// ledger package sets one operator per signer on its own clients.
func NewHederaClient(network string) (*hedera.Client, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}
	return endpoints[normalized].newClient(), nil
}

// MirrorBaseURL returns the public mirror node for the network.
func MirrorBaseURL(network string) (string, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return "", err
	}
	return endpoints[normalized].mirror, nil
}

// ExplorerURL builds a HashScan link. kind is one of account, token, contract or
// transaction. Unknown networks fall back to testnet.
func ExplorerURL(network string, kind string, id string) string {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		normalized = NetworkTestnet
	}
	return fmt.Sprintf("https://hashscan.io/%s/%s/%s", normalized, kind, strings.TrimSpace(id))
}
