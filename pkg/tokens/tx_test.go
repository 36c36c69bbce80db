package tokens

import (
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func mustAccount(t *testing.T, raw string) hedera.AccountID {
	t.Helper()
	id, err := hedera.AccountIDFromString(raw)
	if err != nil {
		t.Fatalf("invalid account ID %s: %v", raw, err)
	}
	return id
}

func mustToken(t *testing.T, raw string) hedera.TokenID {
	t.Helper()
	id, err := hedera.TokenIDFromString(raw)
	if err != nil {
		t.Fatalf("invalid token ID %s: %v", raw, err)
	}
	return id
}

func TestBuildCreateFungibleTokenTxDefaults(t *testing.T) {
	supplyKey, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	transaction, err := BuildCreateFungibleTokenTx(CreateFungibleTokenTxParams{
		Name:              StakingTokenName,
		Symbol:            StakingTokenSymbol,
		TreasuryAccountID: mustAccount(t, "0.0.1001"),
		SupplyKey:         supplyKey.PublicKey(),
		TransactionMemo:   "staking setup",
	})
	if err != nil {
		t.Fatalf("BuildCreateFungibleTokenTx failed: %v", err)
	}

	if transaction.GetTokenName() != StakingTokenName {
		t.Fatalf("unexpected token name: %s", transaction.GetTokenName())
	}
	if transaction.GetTokenSymbol() != StakingTokenSymbol {
		t.Fatalf("unexpected token symbol: %s", transaction.GetTokenSymbol())
	}
	if transaction.GetDecimals() != DefaultDecimals {
		t.Fatalf("unexpected decimals: %d", transaction.GetDecimals())
	}
	if transaction.GetInitialSupply() != DefaultInitialSupply {
		t.Fatalf("unexpected initial supply: %d", transaction.GetInitialSupply())
	}
	if transaction.GetTreasuryAccountID().String() != "0.0.1001" {
		t.Fatalf("unexpected treasury: %s", transaction.GetTreasuryAccountID().String())
	}
	if transaction.GetTransactionMemo() != "staking setup" {
		t.Fatalf("unexpected memo: %s", transaction.GetTransactionMemo())
	}
}

func TestBuildCreateFungibleTokenTxOverrides(t *testing.T) {
	supplyKey, _ := hedera.PrivateKeyGenerateEcdsa()
	decimals := uint(8)
	supply := uint64(0)

	transaction, err := BuildCreateFungibleTokenTx(CreateFungibleTokenTxParams{
		Name:              PaymentTokenName,
		Symbol:            PaymentTokenSymbol,
		Decimals:          &decimals,
		InitialSupply:     &supply,
		TreasuryAccountID: mustAccount(t, "0.0.1001"),
		SupplyKey:         supplyKey.PublicKey(),
	})
	if err != nil {
		t.Fatalf("BuildCreateFungibleTokenTx failed: %v", err)
	}
	if transaction.GetDecimals() != 8 {
		t.Fatalf("unexpected decimals: %d", transaction.GetDecimals())
	}
	if transaction.GetInitialSupply() != 0 {
		t.Fatalf("unexpected initial supply: %d", transaction.GetInitialSupply())
	}
}

func TestBuildCreateFungibleTokenTxValidation(t *testing.T) {
	supplyKey, _ := hedera.PrivateKeyGenerateEcdsa()
	treasury := mustAccount(t, "0.0.1001")

	cases := []CreateFungibleTokenTxParams{
		{Symbol: "MST", TreasuryAccountID: treasury, SupplyKey: supplyKey.PublicKey()},
		{Name: "Token", TreasuryAccountID: treasury, SupplyKey: supplyKey.PublicKey()},
		{Name: "Token", Symbol: "MST", SupplyKey: supplyKey.PublicKey()},
		{Name: "Token", Symbol: "MST", TreasuryAccountID: treasury},
	}
	for index, params := range cases {
		if _, err := BuildCreateFungibleTokenTx(params); err == nil {
			t.Fatalf("case %d: expected validation error", index)
		}
	}
}

func TestBuildAssociateTx(t *testing.T) {
	transaction, err := BuildAssociateTx(AssociateTxParams{
		AccountID: mustAccount(t, "0.0.1002"),
		TokenIDs:  []hedera.TokenID{mustToken(t, "0.0.2001"), mustToken(t, "0.0.2002")},
	})
	if err != nil {
		t.Fatalf("BuildAssociateTx failed: %v", err)
	}
	if transaction.GetAccountID().String() != "0.0.1002" {
		t.Fatalf("unexpected account: %s", transaction.GetAccountID().String())
	}
	if len(transaction.GetTokenIDs()) != 2 {
		t.Fatalf("expected 2 token IDs, got %d", len(transaction.GetTokenIDs()))
	}

	if _, err := BuildAssociateTx(AssociateTxParams{AccountID: mustAccount(t, "0.0.1002")}); err == nil {
		t.Fatal("expected error without token IDs")
	}
	if _, err := BuildAssociateTx(AssociateTxParams{TokenIDs: []hedera.TokenID{mustToken(t, "0.0.2001")}}); err == nil {
		t.Fatal("expected error without account ID")
	}
}

func TestBuildApproveAllowanceTx(t *testing.T) {
	transaction, err := BuildApproveAllowanceTx(ApproveAllowanceTxParams{
		TokenID:          mustToken(t, "0.0.2001"),
		OwnerAccountID:   mustAccount(t, "0.0.1001"),
		SpenderAccountID: mustAccount(t, "0.0.1002"),
		Amount:           DefaultAllowance,
	})
	if err != nil {
		t.Fatalf("BuildApproveAllowanceTx failed: %v", err)
	}
	if transaction == nil {
		t.Fatal("expected transaction")
	}

	_, err = BuildApproveAllowanceTx(ApproveAllowanceTxParams{
		TokenID:          mustToken(t, "0.0.2001"),
		OwnerAccountID:   mustAccount(t, "0.0.1001"),
		SpenderAccountID: mustAccount(t, "0.0.1002"),
		Amount:           -1,
	})
	if err == nil {
		t.Fatal("expected error for negative allowance")
	}
}

func TestBuildMintTx(t *testing.T) {
	transaction, err := BuildMintTx(MintTxParams{TokenID: mustToken(t, "0.0.2002"), Amount: DefaultMintAmount})
	if err != nil {
		t.Fatalf("BuildMintTx failed: %v", err)
	}
	if transaction.GetTokenID().String() != "0.0.2002" {
		t.Fatalf("unexpected token ID: %s", transaction.GetTokenID().String())
	}
	if transaction.GetAmount() != DefaultMintAmount {
		t.Fatalf("unexpected amount: %d", transaction.GetAmount())
	}

	if _, err := BuildMintTx(MintTxParams{TokenID: mustToken(t, "0.0.2002")}); err == nil {
		t.Fatal("expected error for zero amount")
	}
}

func TestBuildTransferTx(t *testing.T) {
	transaction, err := BuildTransferTx(TransferTxParams{
		TokenID:       mustToken(t, "0.0.2001"),
		FromAccountID: mustAccount(t, "0.0.1001"),
		ToAccountID:   mustAccount(t, "0.0.1002"),
		Amount:        100,
	})
	if err != nil {
		t.Fatalf("BuildTransferTx failed: %v", err)
	}

	transfers := transaction.GetTokenTransfers()[mustToken(t, "0.0.2001")]
	if len(transfers) != 2 {
		t.Fatalf("expected 2 token transfers, got %d", len(transfers))
	}
	var sum int64
	for _, transfer := range transfers {
		sum += transfer.Amount
	}
	if sum != 0 {
		t.Fatalf("transfers must balance, got %d", sum)
	}

	invalid := []TransferTxParams{
		{TokenID: mustToken(t, "0.0.2001"), FromAccountID: mustAccount(t, "0.0.1001"), ToAccountID: mustAccount(t, "0.0.1001"), Amount: 1},
		{TokenID: mustToken(t, "0.0.2001"), FromAccountID: mustAccount(t, "0.0.1001"), ToAccountID: mustAccount(t, "0.0.1002")},
		{FromAccountID: mustAccount(t, "0.0.1001"), ToAccountID: mustAccount(t, "0.0.1002"), Amount: 1},
	}
	for index, params := range invalid {
		if _, err := BuildTransferTx(params); err == nil {
			t.Fatalf("case %d: expected validation error", index)
		}
	}
}
