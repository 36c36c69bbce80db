package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hashgraph-online/reward-distribution-go/pkg/balance"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
	"github.com/hashgraph-online/reward-distribution-go/pkg/mirror"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
	"github.com/hashgraph-online/reward-distribution-go/pkg/staking"
	"github.com/hashgraph-online/reward-distribution-go/pkg/tokens"
)

const envPrefix = "REWARDCTL"

// Persistent flag keys. Each can also be set as REWARDCTL_<KEY>.
const (
	EnvFileKey    = "env-file"
	NetworkKey    = "network"
	LogLevelKey   = "log-level"
	MirrorURLKey  = "mirror-url"
	ContractIDKey = "contract-id"
	SignerKey     = "signer"
)

// app carries the configuration and lazily built clients shared by commands.
type app struct {
	v      *viper.Viper
	config shared.Config
	log    *zap.Logger
	hedera *ledger.Hedera
	mirror *mirror.Client
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &app{v: v, log: zap.NewNop()}
}

func addPersistentFlags(fs *pflag.FlagSet) {
	fs.String(EnvFileKey, "", "Load variables from this env file instead of searching for .env")
	fs.String(NetworkKey, "", "Hedera network (testnet or mainnet); overrides HEDERA_NETWORK")
	fs.String(LogLevelKey, "info", "Log level (debug, info, warn, error)")
	fs.String(MirrorURLKey, "", "Mirror node base URL; overrides MIRROR_BASE_URL")
	fs.String(ContractIDKey, "", "Reward distribution contract ID; overrides REWARD_DISTRIBUTION_CONTRACT_ID")
	fs.String(SignerKey, shared.SignerOperator, "Signer paying for the operation (operator, account1..3, treasury)")
}

// load reads the environment and builds the logger. It runs before every
// command through PersistentPreRunE.
func (a *app) load(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	logger, err := shared.NewLogger(a.v.GetString(LogLevelKey))
	if err != nil {
		return err
	}
	a.log = logger

	var config shared.Config
	if path := a.v.GetString(EnvFileKey); path != "" {
		if err := shared.LoadEnvFile(path); err != nil {
			return err
		}
		config, err = shared.ConfigFromLookup(os.LookupEnv)
	} else {
		config, err = shared.ConfigFromEnv()
	}
	if err != nil {
		return err
	}

	if network := a.v.GetString(NetworkKey); network != "" {
		config.Network, err = shared.NormalizeNetwork(network)
		if err != nil {
			return err
		}
	}
	if mirrorURL := a.v.GetString(MirrorURLKey); mirrorURL != "" {
		config.MirrorBaseURL = mirrorURL
	}
	if contractID := a.v.GetString(ContractIDKey); contractID != "" {
		config.ContractID = contractID
	}
	a.config = config
	return nil
}

func (a *app) signer() string {
	return strings.ToLower(strings.TrimSpace(a.v.GetString(SignerKey)))
}

func (a *app) ledger() (*ledger.Hedera, error) {
	if a.hedera != nil {
		return a.hedera, nil
	}
	h, err := ledger.NewHedera(a.config, a.log)
	if err != nil {
		return nil, err
	}
	a.hedera = h
	return h, nil
}

func (a *app) mirrorClient() (*mirror.Client, error) {
	if a.mirror != nil {
		return a.mirror, nil
	}
	client, err := mirror.NewClient(mirror.Config{
		Network: a.config.Network,
		BaseURL: a.config.MirrorBaseURL,
	})
	if err != nil {
		return nil, err
	}
	a.mirror = client
	return client, nil
}

func (a *app) balanceReader() (*balance.Reader, error) {
	source, err := a.mirrorClient()
	if err != nil {
		return nil, err
	}
	return balance.NewReader(balance.ReaderConfig{
		Source: source,
		Scale:  a.config.BalanceScale,
		Logger: a.log,
	})
}

func (a *app) stakingClient() (*staking.Client, error) {
	h, err := a.ledger()
	if err != nil {
		return nil, err
	}
	return staking.NewClient(h, staking.ClientConfig{
		ContractID: a.config.ContractID,
		Network:    a.config.Network,
	})
}

func (a *app) tokenClient() (*tokens.Client, error) {
	h, err := a.ledger()
	if err != nil {
		return nil, err
	}
	return tokens.NewClient(h, h, a.config.Network)
}

// tokenID maps the mst and mpt aliases to the configured token IDs.
func (a *app) tokenID(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "mst":
		if a.config.MSTTokenID == "" {
			return "", &shared.MissingEnvError{Keys: []string{shared.EnvMSTToken}}
		}
		return a.config.MSTTokenID, nil
	case "mpt":
		if a.config.MPTTokenID == "" {
			return "", &shared.MissingEnvError{Keys: []string{shared.EnvMPTToken}}
		}
		return a.config.MPTTokenID, nil
	case "token":
		if a.config.TokenID == "" {
			return "", &shared.MissingEnvError{Keys: []string{shared.EnvTokenID}}
		}
		return a.config.TokenID, nil
	}
	return strings.TrimSpace(raw), nil
}

// accountID maps a signer name to its account ID and passes IDs through.
func (a *app) accountID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if account, _ := a.config.Signer(trimmed); account.AccountID != "" {
		return account.AccountID, nil
	}
	if strings.Count(trimmed, ".") == 2 {
		return trimmed, nil
	}
	return "", fmt.Errorf("unknown account %q", raw)
}

// close releases the SDK clients and flushes the logger. It is safe to call
// more than once.
func (a *app) close() {
	if a.hedera != nil {
		if err := a.hedera.Close(); err != nil {
			a.log.Warn("failed to close ledger client", zap.Error(err))
		}
		a.hedera = nil
	}
	a.mirror = nil
	_ = a.log.Sync()
}
