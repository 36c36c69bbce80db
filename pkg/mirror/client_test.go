package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientTestnet(t *testing.T) {
	client, err := NewClient(Config{Network: "testnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://testnet.mirrornode.hedera.com" {
		t.Fatalf("unexpected baseURL: %s", client.baseURL)
	}
}

func TestNewClientMainnet(t *testing.T) {
	client, err := NewClient(Config{Network: "mainnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://mainnet-public.mirrornode.hedera.com" {
		t.Fatalf("unexpected baseURL: %s", client.baseURL)
	}
}

func TestNewClientCustomBaseURL(t *testing.T) {
	client, err := NewClient(Config{
		Network: "testnet",
		BaseURL: "https://custom.example.com/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://custom.example.com" {
		t.Fatalf("unexpected baseURL: %s", client.baseURL)
	}
}

func TestNewClientUnsupportedNetwork(t *testing.T) {
	_, err := NewClient(Config{Network: "badnet"})
	if err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestNewClientWithAPIKey(t *testing.T) {
	client, err := NewClient(Config{
		Network: "testnet",
		APIKey:  "my-api-key",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.apiKey != "my-api-key" {
		t.Fatalf("expected api key 'my-api-key', got %q", client.apiKey)
	}
}

func TestNewClientWithHeaders(t *testing.T) {
	client, err := NewClient(Config{
		Network: "testnet",
		Headers: map[string]string{"X-Custom": "test"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.headers["X-Custom"] != "test" {
		t.Fatalf("expected header X-Custom=test, got %q", client.headers["X-Custom"])
	}
}

func TestNewClientWithHTTPClient(t *testing.T) {
	customHTTP := &http.Client{}
	client, err := NewClient(Config{
		Network:    "testnet",
		HTTPClient: customHTTP,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.httpClient != customHTTP {
		t.Fatal("expected custom http client to be used")
	}
}

func TestBaseURL(t *testing.T) {
	client, err := NewClient(Config{Network: "testnet"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.BaseURL() != "https://testnet.mirrornode.hedera.com" {
		t.Fatalf("unexpected BaseURL(): %s", client.BaseURL())
	}
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "ftp://mirror.example.com"}); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
	if _, err := NewClient(Config{BaseURL: "https://"}); err == nil {
		t.Fatal("expected error for missing host")
	}
}

func TestGetAccountEmpty(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	_, err := client.GetAccount(context.Background(), "   ")
	if err == nil {
		t.Fatal("expected error for empty account ID")
	}
}

func TestGetAccountSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/0.0.1001" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"account":"0.0.1001","evm_address":"0x7e5f4552091a69125d5dfcb7b8c2659029395bdf","memo":"staker","balance":{"balance":500,"tokens":[{"token_id":"0.0.2001","balance":25}]}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	account, err := client.GetAccount(context.Background(), "0.0.1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account == nil {
		t.Fatal("expected account")
	}
	if account.EVMAddress != "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf" {
		t.Fatalf("unexpected evm address: %s", account.EVMAddress)
	}
	if account.Balance == nil || len(account.Balance.Tokens) != 1 || account.Balance.Tokens[0].Balance != 25 {
		t.Fatalf("unexpected balance: %+v", account.Balance)
	}
}

func TestGetAccountNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"_status":{"messages":[{"message":"Not found"}]}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	account, err := client.GetAccount(context.Background(), "0.0.404")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account != nil {
		t.Fatal("expected nil for not found")
	}
}

func TestGetBalancesEmpty(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	if _, err := client.GetBalances(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty account ID")
	}
}

func TestGetBalancesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/balances" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("account.id") != "0.0.1002" {
			t.Fatalf("unexpected account.id: %s", r.URL.Query().Get("account.id"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(BalancesResponse{
			Timestamp: "1700000000.000000001",
			Balances: []BalanceEntry{{
				Account: "0.0.1002",
				Balance: 100000000,
				Tokens: []TokenBalance{
					{TokenID: "0.0.2001", Balance: 100000},
					{TokenID: "0.0.2002", Balance: 0},
				},
			}},
		})
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	response, err := client.GetBalances(context.Background(), " 0.0.1002 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Balances) != 1 {
		t.Fatalf("expected 1 balance entry, got %d", len(response.Balances))
	}
	if len(response.Balances[0].Tokens) != 2 {
		t.Fatalf("expected 2 token entries, got %d", len(response.Balances[0].Tokens))
	}
	if response.Balances[0].Tokens[0].Balance != 100000 {
		t.Fatalf("unexpected token balance: %d", response.Balances[0].Tokens[0].Balance)
	}
}

func TestGetTokenSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tokens/0.0.2001" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token_id":"0.0.2001","name":"Mintable Staking Token","symbol":"MST","decimals":"2","type":"FUNGIBLE_COMMON","supply_type":"INFINITE"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	token, err := client.GetToken(context.Background(), "0.0.2001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == nil || token.Symbol != "MST" || token.Decimals != "2" {
		t.Fatalf("unexpected token: %+v", token)
	}
}

func TestGetTokenNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	token, err := client.GetToken(context.Background(), "0.0.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != nil {
		t.Fatal("expected nil for not found")
	}
}

func TestGetTokenEmpty(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	if _, err := client.GetToken(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty token ID")
	}
}

func TestGetContractSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/contracts/0.0.3001" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ContractInfo{ContractID: "0.0.3001", EVMAddress: "0x0000000000000000000000000000000000000bb9"})
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	contract, err := client.GetContract(context.Background(), "0.0.3001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contract == nil || contract.ContractID != "0.0.3001" {
		t.Fatalf("unexpected contract: %+v", contract)
	}
}

func TestGetContractEmpty(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	if _, err := client.GetContract(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty contract ID")
	}
}

func TestGetTransactionEmpty(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	_, err := client.GetTransaction(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for empty transaction ID")
	}
}

func TestGetTransactionSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/transactions/0.0.1-123-456" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactionsResponse{
			Transactions: []Transaction{{
				TransactionID: "0.0.1-123-456",
				Result:        "SUCCESS",
				Name:          "CONTRACTCALL",
			}},
		})
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	tx, err := client.GetTransaction(context.Background(), "0.0.1@123.456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx == nil {
		t.Fatal("expected non-nil transaction")
	}
	if tx.Result != "SUCCESS" {
		t.Fatalf("expected 'SUCCESS', got %q", tx.Result)
	}
}

func TestGetTransactionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactionsResponse{Transactions: []Transaction{}})
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	tx, err := client.GetTransaction(context.Background(), "0.0.1@123.456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx != nil {
		t.Fatal("expected nil for not found")
	}
}

func TestNormalizeTransactionID(t *testing.T) {
	cases := map[string]string{
		"0.0.1@123.456":   "0.0.1-123-456",
		" 0.0.1-123-456 ": "0.0.1-123-456",
		"":                "",
	}
	for input, expected := range cases {
		if got := NormalizeTransactionID(input); got != expected {
			t.Fatalf("NormalizeTransactionID(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestGetJSONServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal error"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	_, err := client.GetToken(context.Background(), "0.0.1")
	if err == nil {
		t.Fatal("expected error for server error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected StatusError with 500, got %v", err)
	}
	if IsNotFound(err) {
		t.Fatal("500 must not be reported as not found")
	}
}

func TestGetJSONInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	_, err := client.GetBalances(context.Background(), "0.0.1")
	if err == nil {
		t.Fatal("expected error for invalid JSON response")
	}
}

func TestResolveURL(t *testing.T) {
	client := &Client{baseURL: "https://example.com"}

	if url := client.resolveURL("/api/test"); url != "https://example.com/api/test" {
		t.Fatalf("unexpected URL: %s", url)
	}

	if url := client.resolveURL("api/test"); url != "https://example.com/api/test" {
		t.Fatalf("unexpected URL: %s", url)
	}

	if url := client.resolveURL("https://other.com/path"); url != "https://other.com/path" {
		t.Fatalf("unexpected URL: %s", url)
	}
}

func TestGetJSONWithAPIKeyAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer my-key" {
			t.Fatalf("expected 'Bearer my-key', got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Custom") != "value" {
			t.Fatalf("expected X-Custom=value, got %q", r.Header.Get("X-Custom"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenInfo{TokenID: "0.0.1"})
	}))
	defer server.Close()

	client, _ := NewClient(Config{
		Network: "testnet",
		BaseURL: server.URL,
		APIKey:  "my-key",
		Headers: map[string]string{"X-Custom": "value"},
	})
	if _, err := client.GetToken(context.Background(), "0.0.1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
