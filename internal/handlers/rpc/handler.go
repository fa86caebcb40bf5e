// Package rpc serves a provider.Provider as a JSON-RPC 2.0 endpoint over
// HTTP. Single requests and batches are accepted on POST /.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/provider"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 5 << 20

// JSON-RPC 2.0 error codes the endpoint answers with itself.
const (
	// ParseErrorCode answers a body that is not valid JSON.
	ParseErrorCode = -32700

	// InvalidRequestCode answers an empty batch or a request without method.
	InvalidRequestCode = -32600

	// InvalidParamsCode answers params that are not an array.
	InvalidParamsCode = -32602
)

var (
	errParse          = &provider.Error{Code: ParseErrorCode, Message: "parse error"}
	errInvalidRequest = &provider.Error{Code: InvalidRequestCode, Message: "invalid request"}
	errInvalidParams  = &provider.Error{Code: InvalidParamsCode, Message: "params must be an array"}
)

// message is an incoming JSON-RPC request. A missing id makes it a
// notification, which gets no response.
type message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func (m message) isNotification() bool {
	return len(m.ID) == 0
}

// request converts m to a provider request. Only positional params are
// supported.
func (m message) request() (provider.Request, error) {
	req := provider.Request{Method: m.Method}

	params := bytes.TrimSpace(m.Params)
	if len(params) == 0 || bytes.Equal(params, []byte("null")) {
		return req, nil
	}

	if err := json.Unmarshal(params, &req.Params); err != nil {
		return provider.Request{}, errInvalidParams
	}
	return req, nil
}

type handler struct {
	provider provider.Provider
}

// NewHandler returns an http.Handler answering JSON-RPC calls with p.
func NewHandler(p provider.Provider) http.Handler {
	return &handler{provider: p}
}

// ServeHTTP answers POST requests carrying one JSON-RPC request or a batch.
func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		writeJSON(r.Context(), w, provider.NewResponse(nil, nil, errParse))
		return
	}

	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		h.serveBatch(r.Context(), w, body)
		return
	}

	var msg message
	if err := json.Unmarshal(body, &msg); err != nil {
		writeJSON(r.Context(), w, provider.NewResponse(nil, nil, errParse))
		return
	}

	resp, ok := h.handle(r.Context(), msg)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(r.Context(), w, resp)
}

// serveBatch answers each element in order. Elements run one after the
// other, so a batch sees the effects of its earlier calls.
func (h *handler) serveBatch(ctx context.Context, w http.ResponseWriter, body []byte) {
	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		writeJSON(ctx, w, provider.NewResponse(nil, nil, errParse))
		return
	}

	if len(raws) == 0 {
		writeJSON(ctx, w, provider.NewResponse(nil, nil, errInvalidRequest))
		return
	}

	responses := make([]provider.Response, 0, len(raws))
	for _, raw := range raws {
		var msg message
		if err := json.Unmarshal(raw, &msg); err != nil {
			responses = append(responses, provider.NewResponse(nil, nil, errInvalidRequest))
			continue
		}

		if resp, ok := h.handle(ctx, msg); ok {
			responses = append(responses, resp)
		}
	}

	if len(responses) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(ctx, w, responses)
}

// handle runs msg. ok is false for notifications.
func (h *handler) handle(ctx context.Context, msg message) (resp provider.Response, ok bool) {
	ctx = logger.Derive(ctx, "rpc.method", msg.Method, "rpc.id", string(msg.ID))

	if msg.JSONRPC != "2.0" || msg.Method == "" {
		return provider.NewResponse(msg.ID, nil, errInvalidRequest), !msg.isNotification()
	}

	req, err := msg.request()
	if err != nil {
		return provider.NewResponse(msg.ID, nil, err), !msg.isNotification()
	}

	result, err := h.provider.Request(ctx, req)
	if err != nil {
		logger.Debug(ctx, "request failed", "error", err)
	}

	return provider.NewResponse(msg.ID, result, err), !msg.isNotification()
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "failed to write response", "error", err)
	}
}
