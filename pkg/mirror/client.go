package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

// StatusError is returned for non-2xx mirror node responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mirror node request failed with status %d: %s", e.StatusCode, e.Body)
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL, err = shared.MirrorBaseURL(network)
		if err != nil {
			return nil, err
		}
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid mirror base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid mirror base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
	}, nil
}

// BaseURL returns the normalized mirror node URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAccount returns the account, or nil when the mirror node does not know it.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*AccountInfo, error) {
	normalizedAccountID := strings.TrimSpace(accountID)
	if normalizedAccountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	var accountInfo AccountInfo
	path := fmt.Sprintf("/api/v1/accounts/%s", url.PathEscape(normalizedAccountID))
	if err := c.getJSON(ctx, path, &accountInfo); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &accountInfo, nil
}

// GetBalances returns the balance entries for one account. Token balances are raw
// integers in the token's smallest unit.
func (c *Client) GetBalances(ctx context.Context, accountID string) (BalancesResponse, error) {
	var response BalancesResponse
	normalizedAccountID := strings.TrimSpace(accountID)
	if normalizedAccountID == "" {
		return response, fmt.Errorf("account ID is required")
	}

	values := url.Values{}
	values.Set("account.id", normalizedAccountID)
	if err := c.getJSON(ctx, "/api/v1/balances?"+values.Encode(), &response); err != nil {
		return BalancesResponse{}, err
	}

	return response, nil
}

// GetToken returns token metadata, or nil when the token does not exist.
func (c *Client) GetToken(ctx context.Context, tokenID string) (*TokenInfo, error) {
	normalizedTokenID := strings.TrimSpace(tokenID)
	if normalizedTokenID == "" {
		return nil, fmt.Errorf("token ID is required")
	}

	var tokenInfo TokenInfo
	path := fmt.Sprintf("/api/v1/tokens/%s", url.PathEscape(normalizedTokenID))
	if err := c.getJSON(ctx, path, &tokenInfo); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &tokenInfo, nil
}

// GetContract returns contract metadata, or nil when the contract does not exist.
func (c *Client) GetContract(ctx context.Context, contractID string) (*ContractInfo, error) {
	normalizedContractID := strings.TrimSpace(contractID)
	if normalizedContractID == "" {
		return nil, fmt.Errorf("contract ID is required")
	}

	var contractInfo ContractInfo
	path := fmt.Sprintf("/api/v1/contracts/%s", url.PathEscape(normalizedContractID))
	if err := c.getJSON(ctx, path, &contractInfo); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &contractInfo, nil
}

// GetTransaction returns the first record for transactionID, or nil.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	normalized := NormalizeTransactionID(transactionID)
	if normalized == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}

	var response transactionsResponse
	path := fmt.Sprintf("/api/v1/transactions/%s", normalized)
	if err := c.getJSON(ctx, path, &response); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(response.Transactions) == 0 {
		return nil, nil
	}

	return &response.Transactions[0], nil
}

// NormalizeTransactionID converts the SDK form 0.0.1@1700000000.000000001 to the
// mirror form 0.0.1-1700000000-000000001.
func NormalizeTransactionID(transactionID string) string {
	trimmed := strings.TrimSpace(transactionID)
	at := strings.Index(trimmed, "@")
	if at < 0 {
		return trimmed
	}
	account := trimmed[:at]
	validStart := strings.Replace(trimmed[at+1:], ".", "-", 1)
	return account + "-" + validStart
}

// IsNotFound reports whether err is a mirror node 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

func (c *Client) getJSON(ctx context.Context, pathOrURL string, target any) error {
	requestURL := c.resolveURL(pathOrURL)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("mirror node request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read mirror node response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &StatusError{
			StatusCode: response.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode mirror node response: %w", err)
	}

	return nil
}

func (c *Client) resolveURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}

	path := pathOrURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}
