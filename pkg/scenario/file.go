package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hashgraph-online/reward-distribution-go/pkg/balance"
	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
	"github.com/hashgraph-online/reward-distribution-go/pkg/ledger"
	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
	"github.com/hashgraph-online/reward-distribution-go/pkg/staking"
)

// Token aliases accepted in a step's tokens list.
const (
	TokenMST = "mst"
	TokenMPT = "mpt"
)

// File is the YAML form of a scenario.
type File struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Steps       []FileStep `yaml:"steps"`
}

// FileStep is either a contract action or a balance probe.
//
//	- signer: account1
//	  action: transfer-mpt
//	  amount: 20000
//	  target: account2
//	- balances: [account1, account2]
//	  tokens: [mst, mpt]
type FileStep struct {
	Name     string   `yaml:"name,omitempty"`
	Signer   string   `yaml:"signer,omitempty"`
	Action   string   `yaml:"action,omitempty"`
	Amount   uint64   `yaml:"amount,omitempty"`
	Target   string   `yaml:"target,omitempty"`
	Balances []string `yaml:"balances,omitempty"`
	Tokens   []string `yaml:"tokens,omitempty"`
}

// ActionBuilder turns a staking action into a ledger operation.
// *staking.Client satisfies it.
type ActionBuilder interface {
	Operation(signer string, action staking.Action) (ledger.Operation, error)
}

// ParseFile decodes a scenario. Unknown keys are rejected.
func ParseFile(data []byte) (File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return File{}, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return File{}, fmt.Errorf("scenario name is required")
	}
	if len(file.Steps) == 0 {
		return File{}, fmt.Errorf("scenario %s has no steps", file.Name)
	}
	return file, nil
}

// LoadFile reads and decodes the scenario at path.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	return ParseFile(data)
}

// Compile resolves signers, targets and tokens against config and builds the
// step list. Every invalid step is reported, not only the first.
func Compile(file File, config shared.Config, builder ActionBuilder) (Scenario, error) {
	if builder == nil {
		return Scenario{}, fmt.Errorf("action builder is required")
	}
	scenario := Scenario{Name: file.Name, Description: file.Description}
	errs := make([]error, 0)
	for index, fileStep := range file.Steps {
		step, err := compileStep(fileStep, config, builder)
		if err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", index+1, err))
			continue
		}
		scenario.Steps = append(scenario.Steps, step)
	}
	if err := errors.Join(errs...); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario %s: %w", file.Name, err)
	}
	return scenario, nil
}

func compileStep(fileStep FileStep, config shared.Config, builder ActionBuilder) (Step, error) {
	hasAction := strings.TrimSpace(fileStep.Action) != ""
	hasProbe := len(fileStep.Balances) > 0
	switch {
	case hasAction && hasProbe:
		return Step{}, fmt.Errorf("a step cannot both run an action and read balances")
	case hasProbe:
		return compileProbe(fileStep, config)
	case hasAction:
		return compileAction(fileStep, config, builder)
	default:
		return Step{}, fmt.Errorf("step needs an action or a balances list")
	}
}

func compileAction(fileStep FileStep, config shared.Config, builder ActionBuilder) (Step, error) {
	kind, err := staking.ParseActionKind(fileStep.Action)
	if err != nil {
		return Step{}, err
	}

	signer := strings.ToLower(strings.TrimSpace(fileStep.Signer))
	if signer == "" {
		signer = shared.SignerOperator
	}
	if err := config.RequireSigner(signer); err != nil {
		return Step{}, err
	}

	action := staking.Action{Kind: kind, Amount: fileStep.Amount}
	if strings.TrimSpace(fileStep.Target) != "" {
		action.Target, err = staking.ResolveTarget(config, fileStep.Target)
		if err != nil {
			return Step{}, fmt.Errorf("invalid target %q: %w", fileStep.Target, err)
		}
	}

	operation, err := builder.Operation(signer, action)
	if err != nil {
		return Step{}, err
	}

	name := strings.TrimSpace(fileStep.Name)
	if name == "" {
		name = signer + " " + string(kind)
		if kind != staking.ActionClaim {
			name += fmt.Sprintf(" %d", fileStep.Amount)
		}
		if target := strings.TrimSpace(fileStep.Target); target != "" {
			name += " to " + target
		}
	}
	return Step{Name: name, Operation: &operation}, nil
}

func compileProbe(fileStep FileStep, config shared.Config) (Step, error) {
	tokens := fileStep.Tokens
	if len(tokens) == 0 {
		tokens = []string{TokenMST, TokenMPT}
	}

	pairs := make([]balance.Pair, 0, len(fileStep.Balances)*len(tokens))
	for _, rawAccount := range fileStep.Balances {
		accountName, accountID, err := resolveAccountID(config, rawAccount)
		if err != nil {
			return Step{}, err
		}
		for _, rawToken := range tokens {
			tokenName, tokenID, err := resolveTokenID(config, rawToken)
			if err != nil {
				return Step{}, err
			}
			pairs = append(pairs, balance.Pair{
				Label:     accountName + " " + tokenName,
				AccountID: accountID,
				TokenID:   tokenID,
			})
		}
	}

	name := strings.TrimSpace(fileStep.Name)
	if name == "" {
		name = "balances"
	}
	return Step{Name: name, Probe: pairs}, nil
}

func resolveAccountID(config shared.Config, raw string) (string, string, error) {
	trimmed := strings.TrimSpace(raw)
	if id, err := evmaddress.ParseLedgerID(trimmed); err == nil {
		return trimmed, id.String(), nil
	}
	account, _ := config.Signer(trimmed)
	if account.AccountID == "" {
		return "", "", fmt.Errorf("account %q is not configured", raw)
	}
	return account.Name, account.AccountID, nil
}

func resolveTokenID(config shared.Config, raw string) (string, string, error) {
	trimmed := strings.TrimSpace(raw)
	switch strings.ToLower(trimmed) {
	case TokenMST:
		if config.MSTTokenID == "" {
			return "", "", &shared.MissingEnvError{Keys: []string{shared.EnvMSTToken}}
		}
		return "MST", config.MSTTokenID, nil
	case TokenMPT:
		if config.MPTTokenID == "" {
			return "", "", &shared.MissingEnvError{Keys: []string{shared.EnvMPTToken}}
		}
		return "MPT", config.MPTTokenID, nil
	}
	id, err := evmaddress.ParseLedgerID(trimmed)
	if err != nil {
		return "", "", fmt.Errorf("invalid token %q: %w", raw, err)
	}
	return id.String(), id.String(), nil
}
