package staking

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

type ExecuteTxParams struct {
	ContractID hedera.ContractID
	Function   string
	Params     *hedera.ContractFunctionParameters
	Gas        uint64
	MaxFeeHbar float64
}

type DeployTxParams struct {
	// Bytecode is the hex text of the compiled contract.
	Bytecode    string
	Gas         int64
	Constructor *hedera.ContractFunctionParameters
	AdminKey    hedera.Key
	Memo        string
}

// BuildExecuteTx builds a state-changing contract call.
func BuildExecuteTx(params ExecuteTxParams) (*hedera.ContractExecuteTransaction, error) {
	if params.ContractID.String() == "0.0.0" {
		return nil, fmt.Errorf("contract ID is required")
	}
	function := strings.TrimSpace(params.Function)
	if function == "" {
		return nil, fmt.Errorf("contract function is required")
	}

	gas := params.Gas
	if gas == 0 {
		gas = DefaultGas
	}
	maxFee := params.MaxFeeHbar
	if maxFee <= 0 {
		maxFee = DefaultMaxFeeHbar
	}
	functionParams := params.Params
	if functionParams == nil {
		functionParams = hedera.NewContractFunctionParameters()
	}

	return hedera.NewContractExecuteTransaction().
		SetContractID(params.ContractID).
		SetGas(gas).
		SetFunction(function, functionParams).
		SetMaxTransactionFee(hedera.NewHbar(maxFee)), nil
}

// BuildDeployFlow uploads bytecode to a file and creates the contract from it.
func BuildDeployFlow(params DeployTxParams) (*hedera.ContractCreateFlow, error) {
	bytecode := strings.TrimPrefix(strings.TrimSpace(params.Bytecode), "0x")
	if bytecode == "" {
		return nil, fmt.Errorf("contract bytecode is required")
	}

	gas := params.Gas
	if gas <= 0 {
		gas = DefaultDeployGas
	}

	flow := hedera.NewContractCreateFlow().
		SetBytecode([]byte(bytecode)).
		SetGas(gas)
	if params.Constructor != nil {
		flow.SetConstructorParameters(params.Constructor)
	}
	if params.AdminKey != nil {
		flow.SetAdminKey(params.AdminKey)
	}
	if memo := strings.TrimSpace(params.Memo); memo != "" {
		flow.SetContractMemo(memo)
	}

	return flow, nil
}
