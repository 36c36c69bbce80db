package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Signer names used to pick the paying account for an operation.
const (
	SignerOperator = "operator"
	SignerAccount1 = "account1"
	SignerAccount2 = "account2"
	SignerAccount3 = "account3"
	SignerTreasury = "treasury"
)

// Environment keys.
const (
	EnvNetwork             = "HEDERA_NETWORK"
	EnvAccountID           = "ACCOUNT_ID"
	EnvAccountPrivateKey   = "ACCOUNT_PRIVATE_KEY"
	EnvMSTToken            = "MST_TOKEN_ADDRESS"
	EnvMPTToken            = "MPT_TOKEN_ADDRESS"
	EnvTokenID             = "TOKEN_ID"
	EnvContractID          = "REWARD_DISTRIBUTION_CONTRACT_ID"
	EnvTreasuryAddress     = "TREASURY_ADDRESS"
	EnvTreasuryPrivateKey  = "TREASURY_PRIVATE_KEY"
	EnvTreasuryEther       = "TREASURY_ADDRESS_ETHER"
	EnvFeeRecipient        = "FEE_RECIPIENT"
	EnvRPCURL              = "RPC_URL"
	EnvMirrorBaseURL       = "MIRROR_BASE_URL"
	EnvBalanceDisplayScale = "BALANCE_DISPLAY_SCALE"
)

// DefaultBalanceDisplayScale is the multiplier the staking dashboards apply to
// normalized token balances.
const DefaultBalanceDisplayScale = 10000

// Account holds the credentials of one named signer.
type Account struct {
	Name       string
	AccountID  string
	PrivateKey string
	EVMAddress string
}

// Configured reports whether both the account ID and key are present.
func (a Account) Configured() bool {
	return a.AccountID != "" && a.PrivateKey != ""
}

// Config is built once at process start and passed to every operation.
type Config struct {
	Network       string
	Operator      Account
	Accounts      []Account
	Treasury      Account
	MSTTokenID    string
	MPTTokenID    string
	TokenID       string
	ContractID    string
	FeeRecipient  string
	RPCURL        string
	MirrorBaseURL string
	BalanceScale  float64

	values map[string]string
}

var dotenvLoadOnce sync.Once

// ConfigFromEnv loads a .env file (if one is found walking up from the working
// directory) and reads the configuration from the process environment.
// Variables already present in the environment are never overridden.
func ConfigFromEnv() (Config, error) {
	loadDotEnvIfPresent()
	return ConfigFromLookup(os.LookupEnv)
}

// ConfigFromLookup reads the configuration through lookup.
func ConfigFromLookup(lookup func(string) (string, bool)) (Config, error) {
	values := map[string]string{}
	read := func(key string) string {
		raw, ok := lookup(key)
		if !ok {
			return ""
		}
		value := strings.TrimSpace(raw)
		if value != "" {
			values[key] = value
		}
		return value
	}

	network := read(EnvNetwork)
	if network == "" {
		network = read("NETWORK")
	}
	normalizedNetwork, err := NormalizeNetwork(network)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Network: normalizedNetwork,
		Operator: Account{
			Name:       SignerOperator,
			AccountID:  read(EnvAccountID),
			PrivateKey: read(EnvAccountPrivateKey),
		},
		MSTTokenID:    read(EnvMSTToken),
		MPTTokenID:    read(EnvMPTToken),
		TokenID:       read(EnvTokenID),
		ContractID:    read(EnvContractID),
		FeeRecipient:  read(EnvFeeRecipient),
		RPCURL:        read(EnvRPCURL),
		MirrorBaseURL: read(EnvMirrorBaseURL),
		BalanceScale:  DefaultBalanceDisplayScale,
	}

	for index := 1; index <= 3; index++ {
		prefix := fmt.Sprintf("ACCOUNT%d", index)
		config.Accounts = append(config.Accounts, Account{
			Name:       fmt.Sprintf("account%d", index),
			AccountID:  read(prefix + "_ID"),
			PrivateKey: read(prefix + "_PRIVATE_KEY"),
			EVMAddress: read(prefix + "_ADDRESS_ETHER"),
		})
	}

	config.Treasury = Account{
		Name:       SignerTreasury,
		AccountID:  read(EnvTreasuryAddress),
		PrivateKey: read(EnvTreasuryPrivateKey),
		EVMAddress: read(EnvTreasuryEther),
	}
	if config.Treasury.AccountID == "" {
		config.Treasury.AccountID = config.Operator.AccountID
	}
	if config.Treasury.PrivateKey == "" && config.Treasury.AccountID == config.Operator.AccountID {
		config.Treasury.PrivateKey = config.Operator.PrivateKey
	}

	if rawScale := read(EnvBalanceDisplayScale); rawScale != "" {
		scale, err := strconv.ParseFloat(rawScale, 64)
		if err != nil || scale <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive number, got %q", EnvBalanceDisplayScale, rawScale)
		}
		config.BalanceScale = scale
	}

	config.values = values
	return config, nil
}

// Require checks that every key was set. The returned error lists all missing keys.
func (c Config) Require(keys ...string) error {
	missing := make([]string, 0)
	for _, key := range keys {
		if _, ok := c.values[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingEnvError{Keys: missing}
	}
	return nil
}

// Value returns the raw value read for key.
func (c Config) Value(key string) string {
	return c.values[key]
}

// Signer returns the named account. The second result is false when the name is
// unknown or the account has no credentials.
func (c Config) Signer(name string) (Account, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case SignerOperator:
		return c.Operator, c.Operator.Configured()
	case SignerTreasury:
		return c.Treasury, c.Treasury.Configured()
	}
	for _, account := range c.Accounts {
		if account.Name == normalized {
			return account, account.Configured()
		}
	}
	return Account{}, false
}

// Signers returns every account with credentials, operator first.
func (c Config) Signers() []Account {
	signers := make([]Account, 0, 5)
	if c.Operator.Configured() {
		signers = append(signers, c.Operator)
	}
	for _, account := range c.Accounts {
		if account.Configured() {
			signers = append(signers, account)
		}
	}
	if c.Treasury.Configured() && c.Treasury.AccountID != c.Operator.AccountID {
		signers = append(signers, c.Treasury)
	}
	return signers
}

// AccountKeys lists the ID and key variables for accountN (1-based).
func AccountKeys(index int) []string {
	prefix := fmt.Sprintf("ACCOUNT%d", index)
	return []string{prefix + "_ID", prefix + "_PRIVATE_KEY"}
}

// SignerKeys lists the variables that configure the named signer.
func SignerKeys(name string) ([]string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case SignerOperator:
		return []string{EnvAccountID, EnvAccountPrivateKey}, true
	case SignerTreasury:
		return []string{EnvTreasuryAddress, EnvTreasuryPrivateKey}, true
	}
	for index := 1; index <= 3; index++ {
		if normalized == fmt.Sprintf("account%d", index) {
			return AccountKeys(index), true
		}
	}
	return nil, false
}

// RequireSigner fails with a *MissingEnvError naming the unset variables when
// the named signer has no credentials.
func (c Config) RequireSigner(name string) error {
	if _, ok := c.Signer(name); ok {
		return nil
	}
	keys, known := SignerKeys(name)
	if !known {
		return fmt.Errorf("unknown signer %q", name)
	}
	if err := c.Require(keys...); err != nil {
		return err
	}
	return &MissingEnvError{Keys: keys}
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}
		if candidate, ok := findDotEnv(cwd); ok {
			_ = godotenv.Load(candidate)
		}
	})
}

func findDotEnv(start string) (string, bool) {
	current := start
	for {
		candidate := filepath.Join(current, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// LoadEnvFile loads an explicit env file. Existing variables win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
