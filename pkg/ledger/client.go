package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"

	"github.com/hashgraph-online/reward-distribution-go/pkg/shared"
)

const defaultQueryGas = 100_000

// Client submits operations and runs read-only contract calls. Submissions
// are at-most-once: nothing here retries.
type Client interface {
	Submit(ctx context.Context, operation Operation) (Receipt, error)
	Query(ctx context.Context, query ContractQuery) (CallResult, error)
}

type signerClient struct {
	account    shared.Account
	accountID  hedera.AccountID
	privateKey hedera.PrivateKey
	client     *hedera.Client
}

// Hedera is the SDK-backed Client. It keeps one SDK client per configured
// signer, each with that signer as operator.
type Hedera struct {
	network string
	signers map[string]*signerClient
	log     *zap.Logger
}

var _ Client = (*Hedera)(nil)

// NewHedera builds a client for every signer in config that has credentials.
func NewHedera(config shared.Config, logger *zap.Logger) (*Hedera, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := config.Require(shared.EnvAccountID, shared.EnvAccountPrivateKey); err != nil {
		return nil, err
	}

	h := &Hedera{
		network: config.Network,
		signers: map[string]*signerClient{},
		log:     logger,
	}

	for _, account := range config.Signers() {
		signer, err := newSignerClient(config.Network, account)
		if err != nil {
			_ = h.Close()
			return nil, err
		}
		h.signers[account.Name] = signer
	}
	if operator, ok := h.signers[shared.SignerOperator]; ok {
		if _, ok := h.signers[shared.SignerTreasury]; !ok && config.Treasury.AccountID == config.Operator.AccountID {
			h.signers[shared.SignerTreasury] = operator
		}
	}

	return h, nil
}

func newSignerClient(network string, account shared.Account) (*signerClient, error) {
	accountID, err := hedera.AccountIDFromString(account.AccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid %s account ID: %w", account.Name, err)
	}
	privateKey, err := shared.ParseECDSAPrivateKey(account.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid %s private key: %w", account.Name, err)
	}
	client, err := shared.NewHederaClient(network)
	if err != nil {
		return nil, err
	}
	client.SetOperator(accountID, privateKey)

	return &signerClient{
		account:    account,
		accountID:  accountID,
		privateKey: privateKey,
		client:     client,
	}, nil
}

func (h *Hedera) Network() string {
	return h.network
}

// Signers lists configured signer names in sorted order.
func (h *Hedera) Signers() []string {
	names := make([]string, 0, len(h.signers))
	for name := range h.signers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HederaClient returns the SDK client whose operator is signer.
func (h *Hedera) HederaClient(signer string) (*hedera.Client, error) {
	entry, err := h.signer(signer)
	if err != nil {
		return nil, err
	}
	return entry.client, nil
}

// AccountID returns the ledger account of signer.
func (h *Hedera) AccountID(signer string) (hedera.AccountID, error) {
	entry, err := h.signer(signer)
	if err != nil {
		return hedera.AccountID{}, err
	}
	return entry.accountID, nil
}

// PrivateKey returns the key of signer, for operations that need a second
// signature (for example a treasury that is not the payer).
func (h *Hedera) PrivateKey(signer string) (hedera.PrivateKey, error) {
	entry, err := h.signer(signer)
	if err != nil {
		return hedera.PrivateKey{}, err
	}
	return entry.privateKey, nil
}

func (h *Hedera) signer(name string) (*signerClient, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = shared.SignerOperator
	}
	entry, ok := h.signers[normalized]
	if !ok {
		return nil, fmt.Errorf("signer %q is not configured", name)
	}
	return entry, nil
}

// Submit prepares the operation with the signer's client, executes it and
// waits for the receipt. A non-success receipt is a *RejectedError.
func (h *Hedera) Submit(ctx context.Context, operation Operation) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if operation.Prepare == nil {
		return Receipt{}, fmt.Errorf("%s: operation has no transaction", operation.Name)
	}
	signer, err := h.signer(operation.Signer)
	if err != nil {
		return Receipt{}, err
	}

	transaction, err := operation.Prepare(signer.client)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to prepare %s: %w", operation.Name, err)
	}

	h.log.Debug("submitting transaction",
		append([]zap.Field{zap.String("operation", operation.Name), zap.String("signer", signer.account.Name)}, operation.Fields...)...)

	response, err := transaction.Execute(signer.client)
	if err != nil {
		return Receipt{}, Classify(operation.Name, err)
	}
	receipt, err := response.GetReceipt(signer.client)
	if err != nil {
		return Receipt{}, Classify(operation.Name, err)
	}

	result := ReceiptFromSDK(response.TransactionID, receipt)
	if receipt.Status != hedera.StatusSuccess {
		return result, &RejectedError{
			Operation:     operation.Name,
			Status:        result.Status,
			TransactionID: result.TransactionID,
		}
	}

	return result, nil
}

// Query runs a contract call paid by the query's signer.
func (h *Hedera) Query(ctx context.Context, query ContractQuery) (CallResult, error) {
	if err := ctx.Err(); err != nil {
		return CallResult{}, err
	}
	signer, err := h.signer(query.Signer)
	if err != nil {
		return CallResult{}, err
	}
	contractID, err := hedera.ContractIDFromString(strings.TrimSpace(query.ContractID))
	if err != nil {
		return CallResult{}, fmt.Errorf("invalid contract ID %q: %w", query.ContractID, err)
	}
	if strings.TrimSpace(query.Function) == "" {
		return CallResult{}, fmt.Errorf("%s: contract function is required", query.Name)
	}

	params := query.Params
	if params == nil {
		params = hedera.NewContractFunctionParameters()
	}
	gas := query.Gas
	if gas == 0 {
		gas = defaultQueryGas
	}

	call := hedera.NewContractCallQuery().
		SetContractID(contractID).
		SetGas(gas).
		SetFunction(query.Function, params)
	if query.MaxPaymentHbar > 0 {
		call.SetMaxQueryPayment(hedera.NewHbar(query.MaxPaymentHbar))
	}

	result, err := call.Execute(signer.client)
	if err != nil {
		return CallResult{}, Classify(query.Name, err)
	}

	return CallResult{Data: result.ContractCallResult}, nil
}

// Close releases every SDK client.
func (h *Hedera) Close() error {
	var firstErr error
	closed := map[*signerClient]bool{}
	for _, signer := range h.signers {
		if closed[signer] {
			continue
		}
		closed[signer] = true
		if err := signer.client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
