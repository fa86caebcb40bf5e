// Package jsonrpc is a JSON-RPC 2.0 client over HTTP used to reach the
// upstream wallet node. Requests carry UUID ids; error objects returned by
// the node surface as *Error values that keep the original code, message
// and data so they can be relayed to callers unchanged.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	transporthttp "github.com/gabapcia/txbatch/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError matches every *Error via errors.Is.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus is returned when the node answers with a non-2xx
	// status and no JSON-RPC body.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// Version is the protocol version sent with every request.
const Version = "2.0"

// Error is a JSON-RPC error object returned by the remote server.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

// Unwrap lets errors.Is match ErrProviderReturnedError.
func (e *Error) Unwrap() error {
	return ErrProviderReturnedError
}

// ErrorCode returns the JSON-RPC error code.
func (e *Error) ErrorCode() int {
	return e.Code
}

// ErrorData returns the raw error data, or nil when the server sent none.
func (e *Error) ErrorData() any {
	if len(e.Data) == 0 {
		return nil
	}
	return e.Data
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Error   *Error          `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns the response's error object as an error, or nil.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// Client sends JSON-RPC requests.
type Client interface {
	// Call invokes method with params and returns the raw result. A JSON-RPC
	// error object comes back as *Error.
	Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
}

var _ Client = (*client)(nil)

// Call sends one request and returns its raw result.
func (c *client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JSONRPC: Version,
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, res.Status)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}
	return data.Result, nil
}

type config struct {
	httpOpts []transporthttp.Option
}

// Option configures a client built by NewClient.
type Option func(*config)

// WithTimeout sets the deadline of a single HTTP attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, transporthttp.WithTimeout(d))
	}
}

// WithRetryMax sets how many times a failed HTTP attempt is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, transporthttp.WithRetryMax(n))
	}
}

// WithRetryWaitMin sets the minimum backoff between attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, transporthttp.WithRetryWaitMin(d))
	}
}

// WithRetryWaitMax sets the maximum backoff between attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.httpOpts = append(c.httpOpts, transporthttp.WithRetryWaitMax(d))
	}
}

// NewClient returns a Client posting to providerEndpoint. The HTTP layer
// uses the transport/http defaults unless overridden by opts.
func NewClient(providerEndpoint string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       transporthttp.NewClient(cfg.httpOpts...),
	}
}
