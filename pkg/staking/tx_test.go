package staking

import (
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/require"
)

func TestBuildExecuteTxDefaults(t *testing.T) {
	contractID, err := hedera.ContractIDFromString("0.0.3001")
	require.NoError(t, err)

	transaction, err := BuildExecuteTx(ExecuteTxParams{ContractID: contractID, Function: FunctionClaim})
	require.NoError(t, err)
	require.EqualValues(t, DefaultGas, transaction.GetGas())
	require.Equal(t, hedera.NewHbar(DefaultMaxFeeHbar), transaction.GetMaxTransactionFee())
}

func TestBuildExecuteTxValidation(t *testing.T) {
	_, err := BuildExecuteTx(ExecuteTxParams{Function: FunctionClaim})
	require.ErrorContains(t, err, "contract ID")

	contractID, err := hedera.ContractIDFromString("0.0.3001")
	require.NoError(t, err)
	_, err = BuildExecuteTx(ExecuteTxParams{ContractID: contractID, Function: "  "})
	require.ErrorContains(t, err, "function")
}

func TestBuildDeployFlow(t *testing.T) {
	flow, err := BuildDeployFlow(DeployTxParams{Bytecode: " 0x6080604052 "})
	require.NoError(t, err)
	require.Equal(t, []byte("6080604052"), flow.GetBytecode())
	require.EqualValues(t, DefaultDeployGas, flow.GetGas())

	flow, err = BuildDeployFlow(DeployTxParams{Bytecode: "6080", Gas: 2_500_000, Memo: "reward distribution"})
	require.NoError(t, err)
	require.EqualValues(t, 2_500_000, flow.GetGas())

	_, err = BuildDeployFlow(DeployTxParams{Bytecode: "0x"})
	require.ErrorContains(t, err, "bytecode")
}
