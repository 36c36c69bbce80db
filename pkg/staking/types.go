package staking

import (
	"fmt"
	"strings"

	"github.com/hashgraph-online/reward-distribution-go/pkg/contractparams"
	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
)

// Contract function names.
const (
	FunctionStake       = "stakeTokens"
	FunctionUnstake     = "unstakeTokens"
	FunctionTransferMST = "transferMstTokens"
	FunctionTransferMPT = "transferMptTokens"
	FunctionClaim       = "claimRewards"
	FunctionGetStakes   = "getStakes"
	FunctionGetRewards  = "getRewards"
	FunctionGetTest     = "getTestValue"
)

const (
	DefaultGas           = 3_000_000
	DefaultQueryGas      = 1_000_000
	DefaultMaxFeeHbar    = 20
	DefaultDeployGas     = 1_000_000
	DefaultFeePercentage = 10
)

// ActionKind names a state-changing staking contract call.
type ActionKind string

const (
	ActionStake       ActionKind = "stake"
	ActionUnstake     ActionKind = "unstake"
	ActionTransferMST ActionKind = "transfer-mst"
	ActionTransferMPT ActionKind = "transfer-mpt"
	ActionClaim       ActionKind = "claim"
)

// Action is one staking contract call. Target is only used by transfers.
type Action struct {
	Kind   ActionKind
	Amount uint64
	Target evmaddress.HexAddress
}

// ParseActionKind accepts the kind names above, case-insensitively.
func ParseActionKind(raw string) (ActionKind, error) {
	kind := ActionKind(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case ActionStake, ActionUnstake, ActionTransferMST, ActionTransferMPT, ActionClaim:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown staking action %q", raw)
	}
}

// Function returns the contract function the action calls.
func (a Action) Function() string {
	switch a.Kind {
	case ActionStake:
		return FunctionStake
	case ActionUnstake:
		return FunctionUnstake
	case ActionTransferMST:
		return FunctionTransferMST
	case ActionTransferMPT:
		return FunctionTransferMPT
	case ActionClaim:
		return FunctionClaim
	default:
		return ""
	}
}

// Params returns the typed arguments of the call.
func (a Action) Params() ([]contractparams.Param, error) {
	builder := contractparams.NewBuilder()
	switch a.Kind {
	case ActionStake, ActionUnstake:
		if a.Amount == 0 {
			return nil, fmt.Errorf("%s amount must be positive", a.Kind)
		}
		builder.Uint64(a.Amount)
	case ActionTransferMST, ActionTransferMPT:
		if a.Amount == 0 {
			return nil, fmt.Errorf("%s amount must be positive", a.Kind)
		}
		if a.Target == "" {
			return nil, fmt.Errorf("%s requires a target address", a.Kind)
		}
		builder.Uint64(a.Amount).Address(a.Target.String())
	case ActionClaim:
	default:
		return nil, fmt.Errorf("unknown staking action %q", a.Kind)
	}
	if err := builder.Err(); err != nil {
		return nil, err
	}
	return builder.Params(), nil
}

func (a Action) String() string {
	switch a.Kind {
	case ActionClaim:
		return string(a.Kind)
	case ActionTransferMST, ActionTransferMPT:
		return fmt.Sprintf("%s %d to %s", a.Kind, a.Amount, a.Target)
	default:
		return fmt.Sprintf("%s %d", a.Kind, a.Amount)
	}
}
