package contractparams

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/hashgraph-online/reward-distribution-go/pkg/evmaddress"
)

func TestBuilderCollectsParams(t *testing.T) {
	builder := NewBuilder().
		Address("0.0.1234").
		Address("0x7E5F4552091A69125D5DFCB7B8C2659029395BDF").
		Uint64(10).
		Uint256(uint256.NewInt(10)).
		AddressArray("0.0.1", "0.0.2").
		String("RewardDistribution")

	require.NoError(t, builder.Err())
	params := builder.Params()
	require.Len(t, params, 6)
	require.Equal(t, evmaddress.HexAddress("0x0000000000000000000004d20000000000000000"), params[0].Address)
	require.Equal(t, evmaddress.HexAddress("0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"), params[1].Address)
	require.Equal(t, "uint64:10", params[2].String())
	require.Equal(t, "uint256:10", params[3].String())
	require.Len(t, params[4].Addresses, 2)
	require.Equal(t, "string:RewardDistribution", params[5].String())

	encoded, err := builder.Build()
	require.NoError(t, err)
	require.NotNil(t, encoded)
}

func TestBuilderAccumulatesErrors(t *testing.T) {
	builder := NewBuilder().
		Address("0x1234").
		Uint64(1).
		Address("4294967296.0.1").
		Uint256String("-1")

	err := builder.Err()
	require.Error(t, err)

	var invalid *InvalidParamError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 0, invalid.Index)

	_, buildErr := builder.Build()
	require.ErrorAs(t, buildErr, &invalid)
	require.Equal(t, 0, invalid.Index)
	require.Equal(t, KindAddress, invalid.Kind)

	require.Contains(t, err.Error(), "parameter 2")
	require.Contains(t, err.Error(), "parameter 3")
}

func TestBuilderRejectsOutOfRangeID(t *testing.T) {
	_, err := NewBuilder().Address("0.0.4294967296").Build()

	var invalid *InvalidParamError
	require.ErrorAs(t, err, &invalid)
	require.Contains(t, invalid.Reason, "num")
}

func TestUint256Bounds(t *testing.T) {
	max := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	params := NewBuilder().Uint256String(max).Params()
	require.Equal(t, max, params[0].Uint256.Dec())

	err := NewBuilder().Uint256String(max + "0").Err()
	require.Error(t, err)

	err = NewBuilder().Uint256String("0x" + "1" + "0000000000000000000000000000000000000000000000000000000000000000").Err()
	require.Error(t, err)

	params = NewBuilder().Uint256String("0x00ff").Params()
	require.Equal(t, "255", params[0].Uint256.Dec())

	params = NewBuilder().Uint256String("0x000").Params()
	require.True(t, params[0].Uint256.IsZero())

	require.Error(t, NewBuilder().Uint256String("0x").Err())
	require.Error(t, NewBuilder().Uint256String("").Err())
	require.Error(t, NewBuilder().Uint256(nil).Err())
}

func TestUint256IsCopied(t *testing.T) {
	value := uint256.NewInt(5)
	params := NewBuilder().Uint256(value).Params()
	value.SetUint64(6)
	require.Equal(t, "5", params[0].Uint256.Dec())
}

func TestValidateRejectsUnknownKind(t *testing.T) {
	err := Validate(Param{Kind: "bytes32"})
	require.Error(t, err)

	_, err = Encode([]Param{{Kind: KindAddress, Address: "0x12"}})
	require.Error(t, err)
	var malformed *evmaddress.MalformedAddressError
	require.True(t, errors.As(err, &malformed))
}

func TestSignature(t *testing.T) {
	params := NewBuilder().Uint64(1).Address("0.0.5").Params()
	require.Equal(t, "transferMstTokens(uint64,address)", Signature("transferMstTokens", params))
	require.Equal(t, "claimRewards()", Signature("claimRewards", nil))
}

func TestSelector(t *testing.T) {
	require.Equal(t, "a9059cbb", hex.EncodeToString(Selector("transfer(address,uint256)")))
}

func TestCalldata(t *testing.T) {
	params := NewBuilder().Uint64(100).Params()
	data, err := Calldata("stakeTokens", params)
	require.NoError(t, err)
	require.Len(t, data, 4+32)
	require.Equal(t, Selector("stakeTokens(uint64)"), data[:4])
	require.Equal(t, byte(100), data[len(data)-1])

	params = NewBuilder().Uint64(1).Address("0.0.1234").Params()
	data, err = Calldata("transferMptTokens", params)
	require.NoError(t, err)
	require.Len(t, data, 4+64)
	require.Equal(t, "0000000000000000000004d20000000000000000", hex.EncodeToString(data[4+32+12:]))
}

func TestPackArgumentsDynamic(t *testing.T) {
	params := NewBuilder().AddressArray("0.0.1", "0.0.2").String("x").Params()
	packed, err := PackArguments(params)
	require.NoError(t, err)
	// two head words, array length + 2 items, string length + 1 data word
	require.Len(t, packed, 32*(2+3+2))
}
