package staking

import (
	"fmt"
	"strings"

	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
)

// ResolveTarget turns a signer name, a shard.realm.num ID or a hex address
// into a recipient address. A signer with a configured EVM address uses it;
// otherwise its account ID is long-zero encoded.
func ResolveTarget(config shared.Config, raw string) (evmaddress.HexAddress, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("target is required")
	}

	if account, ok := namedAccount(config, trimmed); ok {
		if account.EVMAddress != "" {
			return evmaddress.ParseHexAddress(account.EVMAddress)
		}
		if account.AccountID == "" {
			return "", fmt.Errorf("target %s has no account ID configured", account.Name)
		}
		return evmaddress.EncodeString(account.AccountID)
	}

	return evmaddress.Resolve(trimmed)
}

func namedAccount(config shared.Config, name string) (shared.Account, bool) {
	switch strings.ToLower(name) {
	case shared.SignerOperator:
		return config.Operator, true
	case shared.SignerTreasury:
		return config.Treasury, true
	}
	for _, account := range config.Accounts {
		if strings.EqualFold(account.Name, name) {
			return account, true
		}
	}
	return shared.Account{}, false
}
