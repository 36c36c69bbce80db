package tokens

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildCreateFungibleTokenTx builds a fungible token with infinite supply.
func BuildCreateFungibleTokenTx(params CreateFungibleTokenTxParams) (*hedera.TokenCreateTransaction, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("token name is required")
	}
	symbol := strings.TrimSpace(params.Symbol)
	if symbol == "" {
		return nil, fmt.Errorf("token symbol is required")
	}
	if isZeroAccount(params.TreasuryAccountID) {
		return nil, fmt.Errorf("treasury account ID is required")
	}
	if params.SupplyKey == nil {
		return nil, fmt.Errorf("supply key is required")
	}

	decimals := uint(DefaultDecimals)
	if params.Decimals != nil {
		decimals = *params.Decimals
	}
	initialSupply := uint64(DefaultInitialSupply)
	if params.InitialSupply != nil {
		initialSupply = *params.InitialSupply
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetTokenName(name).
		SetTokenSymbol(symbol).
		SetDecimals(decimals).
		SetInitialSupply(initialSupply).
		SetTreasuryAccountID(params.TreasuryAccountID).
		SetSupplyType(hedera.TokenSupplyTypeInfinite).
		SetSupplyKey(params.SupplyKey).
		SetMaxTransactionFee(hedera.NewHbar(maxFee(params.MaxFeeHbar)))

	if params.AdminKey != nil {
		transaction.SetAdminKey(params.AdminKey)
	}
	if memo := strings.TrimSpace(params.TokenMemo); memo != "" {
		transaction.SetTokenMemo(memo)
	}
	if memo := strings.TrimSpace(params.TransactionMemo); memo != "" {
		transaction.SetTransactionMemo(memo)
	}

	return transaction, nil
}

// BuildAssociateTx associates tokens with an account. The account must sign.
func BuildAssociateTx(params AssociateTxParams) (*hedera.TokenAssociateTransaction, error) {
	if isZeroAccount(params.AccountID) {
		return nil, fmt.Errorf("account ID is required")
	}
	if len(params.TokenIDs) == 0 {
		return nil, fmt.Errorf("at least one token ID is required")
	}

	return hedera.NewTokenAssociateTransaction().
		SetAccountID(params.AccountID).
		SetTokenIDs(params.TokenIDs...), nil
}

// BuildApproveAllowanceTx lets spender move up to Amount of the owner's tokens.
func BuildApproveAllowanceTx(params ApproveAllowanceTxParams) (*hedera.AccountAllowanceApproveTransaction, error) {
	if isZeroToken(params.TokenID) {
		return nil, fmt.Errorf("token ID is required")
	}
	if isZeroAccount(params.OwnerAccountID) {
		return nil, fmt.Errorf("owner account ID is required")
	}
	if isZeroAccount(params.SpenderAccountID) {
		return nil, fmt.Errorf("spender account ID is required")
	}
	if params.Amount < 0 {
		return nil, fmt.Errorf("allowance amount must be non-negative")
	}

	return hedera.NewAccountAllowanceApproveTransaction().
		ApproveTokenAllowance(params.TokenID, params.OwnerAccountID, params.SpenderAccountID, params.Amount), nil
}

// BuildMintTx mints Amount smallest units into the token treasury.
func BuildMintTx(params MintTxParams) (*hedera.TokenMintTransaction, error) {
	if isZeroToken(params.TokenID) {
		return nil, fmt.Errorf("token ID is required")
	}
	if params.Amount == 0 {
		return nil, fmt.Errorf("mint amount must be positive")
	}

	return hedera.NewTokenMintTransaction().
		SetTokenID(params.TokenID).
		SetAmount(params.Amount).
		SetMaxTransactionFee(hedera.NewHbar(maxFee(params.MaxFeeHbar))), nil
}

// BuildTransferTx moves Amount of a token between two accounts.
func BuildTransferTx(params TransferTxParams) (*hedera.TransferTransaction, error) {
	if isZeroToken(params.TokenID) {
		return nil, fmt.Errorf("token ID is required")
	}
	if isZeroAccount(params.FromAccountID) || isZeroAccount(params.ToAccountID) {
		return nil, fmt.Errorf("sender and recipient account IDs are required")
	}
	if params.FromAccountID.String() == params.ToAccountID.String() {
		return nil, fmt.Errorf("sender and recipient must differ")
	}
	if params.Amount <= 0 {
		return nil, fmt.Errorf("transfer amount must be positive")
	}

	return hedera.NewTransferTransaction().
		AddTokenTransfer(params.TokenID, params.FromAccountID, -params.Amount).
		AddTokenTransfer(params.TokenID, params.ToAccountID, params.Amount), nil
}

func maxFee(hbar float64) float64 {
	if hbar <= 0 {
		return DefaultMaxFeeHbar
	}
	return hbar
}

func isZeroAccount(id hedera.AccountID) bool {
	return id.String() == "0.0.0"
}

func isZeroToken(id hedera.TokenID) bool {
	return id.String() == "0.0.0"
}
