// Package provider defines the wallet provider surface shared by the
// interception layer and its upstreams: the request entry point, the
// optional account and hashing capabilities, and the JSON-RPC shapes
// exchanged with callers.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// JSON-RPC methods the engine inspects or issues itself.
const (
	// MethodSendTransaction submits a transaction; approvals and triggers.
	MethodSendTransaction = "eth_sendTransaction"

	// MethodCall is a read; allowance and multicall reads.
	MethodCall = "eth_call"

	// MethodAccounts lists the wallet's accounts, selected one first.
	MethodAccounts = "eth_accounts"

	// MethodSha3 hashes with keccak256 on the node.
	MethodSha3 = "web3_sha3"
)

// ErrNoAccount is returned by an AccountSource with no selected account.
var ErrNoAccount = errors.New("no account selected")

// Provider is the single-argument request entry point of a wallet provider.
type Provider interface {
	// Request submits req and returns the raw JSON result. Errors reported
	// by the provider itself should implement ErrorCode() int.
	Request(ctx context.Context, req Request) (json.RawMessage, error)
}

// AccountSource is implemented by providers that know the currently
// selected account.
type AccountSource interface {
	SelectedAddress(ctx context.Context) (common.Address, error)
}

// Hasher is implemented by providers that expose a keccak256 service.
type Hasher interface {
	Keccak256(ctx context.Context, data []byte) ([]byte, error)
}

// Wallet is a provider with every optional capability.
type Wallet interface {
	Provider
	AccountSource
	Hasher
}

// Request is a call descriptor: a method name and its positional params.
type Request struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params,omitempty"`
}

// NewRequest marshals params into a Request.
func NewRequest(method string, params ...any) (Request, error) {
	req := Request{Method: method}
	for i, p := range params {
		raw, err := json.Marshal(p)
		if err != nil {
			return Request{}, fmt.Errorf("marshal param %d of %s: %w", i, method, err)
		}
		req.Params = append(req.Params, raw)
	}
	return req, nil
}

// Transaction decodes the first param as a transaction object. It reports
// false when there is no first param or it is not an object.
func (r Request) Transaction() (Transaction, bool) {
	var tx Transaction
	if len(r.Params) == 0 {
		return tx, false
	}

	if err := json.Unmarshal(r.Params[0], &tx); err != nil {
		return Transaction{}, false
	}
	return tx, true
}

// ErrNotObject is returned when a transaction param is not a JSON object.
var ErrNotObject = errors.New("transaction is not a JSON object")

// Transaction holds the transaction fields the engine reads or rewrites.
// Unknown fields are dropped on decode.
//
// Value is kept as the caller wrote it, since wallets accept quantities
// (leading zeros, JSON numbers) that strict hex decoding rejects.
type Transaction struct {
	From  *common.Address `json:"from,omitempty"`
	To    *common.Address `json:"to,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
	Input hexutil.Bytes   `json:"input,omitempty"`
}

// UnmarshalJSON decodes each field on its own. A field that is malformed
// is left unset without affecting the others.
func (tx *Transaction) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrNotObject, err)
	}
	if fields == nil {
		return ErrNotObject
	}

	*tx = Transaction{
		From: decodeField[common.Address](fields["from"]),
		To:   decodeField[common.Address](fields["to"]),
	}
	if data := decodeField[hexutil.Bytes](fields["data"]); data != nil {
		tx.Data = *data
	}
	if input := decodeField[hexutil.Bytes](fields["input"]); input != nil {
		tx.Input = *input
	}
	if v := fields["value"]; len(v) > 0 && string(v) != "null" {
		tx.Value = v
	}
	return nil
}

// decodeField decodes raw into a T, returning nil when raw is absent, null
// or malformed.
func decodeField[T any](raw json.RawMessage) *T {
	if len(raw) == 0 {
		return nil
	}

	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// CallData returns data, falling back to input for callers using the newer field name.
func (tx Transaction) CallData() []byte {
	if len(tx.Data) > 0 {
		return tx.Data
	}
	return tx.Input
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements error with the JSON-RPC message.
func (e *Error) Error() string {
	return e.Message
}

// ErrorCode returns the JSON-RPC error code.
func (e *Error) ErrorCode() int {
	return e.Code
}

// ErrorData returns the optional error data.
func (e *Error) ErrorData() any {
	return e.Data
}

// Response is a JSON-RPC 2.0 response, as handed to legacy callbacks.
type Response struct {
	ID      json.RawMessage `json:"id"`
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// codedError is satisfied by errors carrying a JSON-RPC code.
type codedError interface {
	error
	ErrorCode() int
}

// dataError is satisfied by errors carrying JSON-RPC error data.
type dataError interface {
	ErrorData() any
}

// InternalErrorCode is used for errors without a JSON-RPC code.
const InternalErrorCode = -32603

// ToError converts err into a JSON-RPC error object, keeping the code and
// data of errors that carry them.
func ToError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	out := &Error{Code: InternalErrorCode, Message: err.Error()}

	var coded codedError
	if errors.As(err, &coded) {
		out.Code = coded.ErrorCode()
	}

	var withData dataError
	if errors.As(err, &withData) {
		out.Data = withData.ErrorData()
	}
	return out
}

// NewResponse builds the response for a request id from a result or an error.
func NewResponse(id json.RawMessage, result json.RawMessage, err error) Response {
	resp := Response{ID: id, JSONRPC: "2.0"}
	if err != nil {
		resp.Error = ToError(err)
		return resp
	}

	resp.Result = result
	if resp.Result == nil {
		resp.Result = json.RawMessage("null")
	}
	return resp
}
