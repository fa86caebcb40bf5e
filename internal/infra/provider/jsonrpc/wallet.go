// Package jsonrpc implements provider.Wallet on top of a JSON-RPC node or
// wallet endpoint.
package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txbatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txbatch/internal/provider"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// wallet relays requests to an upstream JSON-RPC endpoint.
type wallet struct {
	conn jsonrpc.Client
}

var _ provider.Wallet = (*wallet)(nil)

// NewWallet returns a provider.Wallet talking over conn.
func NewWallet(conn jsonrpc.Client) *wallet {
	return &wallet{
		conn: conn,
	}
}

// toProviderError turns an upstream JSON-RPC error object into a
// provider.Error with the same code, message and data.
func toProviderError(err error) error {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		return err
	}

	out := &provider.Error{Code: rpcErr.Code, Message: rpcErr.Message}
	if len(rpcErr.Data) > 0 {
		out.Data = rpcErr.Data
	}
	return out
}

// Request forwards req to the node unchanged.
func (w *wallet) Request(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	params := make([]any, len(req.Params))
	for i, p := range req.Params {
		params[i] = p
	}

	result, err := w.conn.Call(ctx, req.Method, params...)
	if err != nil {
		return nil, toProviderError(err)
	}
	return result, nil
}

// SelectedAddress returns the first account reported by eth_accounts.
func (w *wallet) SelectedAddress(ctx context.Context) (common.Address, error) {
	result, err := w.conn.Call(ctx, provider.MethodAccounts)
	if err != nil {
		return common.Address{}, toProviderError(err)
	}

	var accounts []common.Address
	if err := json.Unmarshal(result, &accounts); err != nil {
		return common.Address{}, fmt.Errorf("decode %s result: %w", provider.MethodAccounts, err)
	}

	if len(accounts) == 0 {
		return common.Address{}, provider.ErrNoAccount
	}
	return accounts[0], nil
}

// Keccak256 hashes data with web3_sha3.
func (w *wallet) Keccak256(ctx context.Context, data []byte) ([]byte, error) {
	result, err := w.conn.Call(ctx, provider.MethodSha3, hexutil.Bytes(data))
	if err != nil {
		return nil, toProviderError(err)
	}

	var digest hexutil.Bytes
	if err := json.Unmarshal(result, &digest); err != nil {
		return nil, fmt.Errorf("decode %s result: %w", provider.MethodSha3, err)
	}
	return digest, nil
}
