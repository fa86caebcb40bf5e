package interception

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/txbatch/internal/provider"
)

// Send is the two-argument request form. It runs through the same pipeline
// as Request.
func (p *InterceptingProvider) Send(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	req, err := provider.NewRequest(method, params...)
	if err != nil {
		return nil, err
	}
	return p.Request(ctx, req)
}

// SendAsync runs req in the background and hands callback a JSON-RPC
// response carrying id.
func (p *InterceptingProvider) SendAsync(ctx context.Context, id json.RawMessage, req provider.Request, callback func(provider.Response)) {
	go func() {
		result, err := p.Request(ctx, req)
		callback(provider.NewResponse(id, result, err))
	}()
}
