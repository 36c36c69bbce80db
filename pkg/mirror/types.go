package mirror

type AccountInfo struct {
	Account    string          `json:"account"`
	EVMAddress string          `json:"evm_address"`
	Key        map[string]any  `json:"key"`
	Memo       string          `json:"memo"`
	Deleted    bool            `json:"deleted"`
	Balance    *AccountBalance `json:"balance,omitempty"`
}

type AccountBalance struct {
	Balance   int64          `json:"balance"`
	Timestamp string         `json:"timestamp"`
	Tokens    []TokenBalance `json:"tokens"`
}

type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

type BalanceEntry struct {
	Account string         `json:"account"`
	Balance int64          `json:"balance"`
	Tokens  []TokenBalance `json:"tokens"`
}

type BalancesResponse struct {
	Timestamp string         `json:"timestamp"`
	Balances  []BalanceEntry `json:"balances"`
	Links     struct {
		Next string `json:"next"`
	} `json:"links"`
}

type TokenInfo struct {
	TokenID           string `json:"token_id"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Decimals          string `json:"decimals"`
	TotalSupply       string `json:"total_supply"`
	InitialSupply     string `json:"initial_supply"`
	TreasuryAccountID string `json:"treasury_account_id"`
	Type              string `json:"type"`
	SupplyType        string `json:"supply_type"`
	Deleted           bool   `json:"deleted"`
	Memo              string `json:"memo"`
}

type ContractInfo struct {
	ContractID       string `json:"contract_id"`
	EVMAddress       string `json:"evm_address"`
	CreatedTimestamp string `json:"created_timestamp"`
	FileID           string `json:"file_id"`
	Memo             string `json:"memo"`
	Deleted          bool   `json:"deleted"`
}

type Transaction struct {
	ChargedTxFee       int64           `json:"charged_tx_fee"`
	ConsensusTimestamp string          `json:"consensus_timestamp"`
	EntityID           *string         `json:"entity_id"`
	MaxFee             string          `json:"max_fee"`
	MemoBase64         string          `json:"memo_base64"`
	Name               string          `json:"name"`
	Node               string          `json:"node"`
	Result             string          `json:"result"`
	TransactionID      string          `json:"transaction_id"`
	Transfers          []Transfer      `json:"transfers"`
	TokenTransfers     []TokenTransfer `json:"token_transfers"`
}

type Transfer struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type TokenTransfer struct {
	TokenID    string `json:"token_id"`
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type transactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Links        struct {
		Next string `json:"next"`
	} `json:"links"`
}
