package interception

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/txbatch/internal/bus"
	"github.com/gabapcia/txbatch/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
)

// ErrResponderAlreadyStarted is returned if Start is called more than once.
var ErrResponderAlreadyStarted = errors.New("responder already started")

// Responder answers the session store's requests addressed to the proxy
// side: the selected account and the interception toggle.
type Responder struct {
	bus       bus.Bus
	sessionID string
	proxy     *InterceptingProvider

	mu        sync.Mutex
	isStarted bool
	closeFunc func()
}

// NewResponder returns a Responder serving sessionID on behalf of proxy.
func NewResponder(b bus.Bus, sessionID string, proxy *InterceptingProvider) *Responder {
	return &Responder{
		bus:       b,
		sessionID: sessionID,
		proxy:     proxy,
	}
}

// Start serves requests until Close.
func (r *Responder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isStarted {
		return ErrResponderAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	envelopes, err := r.bus.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		for env := range envelopes {
			if env.For(r.sessionID) {
				r.handle(ctx, env)
			}
		}
	}()

	r.closeFunc = func() {
		cancel()
		<-done
	}
	r.isStarted = true
	return nil
}

// Close stops serving.
func (r *Responder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closeFunc != nil {
		r.closeFunc()
	}

	r.closeFunc = nil
	r.isStarted = false
}

func (r *Responder) handle(ctx context.Context, env bus.Envelope) {
	switch env.Type {
	case bus.TypeGetAddress:
		var payload *common.Address
		if addr, err := r.proxy.SelectedAddress(ctx); err == nil {
			payload = &addr
		} else {
			logger.Debug(ctx, "no selected address", "request.id", env.RequestID, "error", err)
		}

		resp, err := bus.NewEnvelope(r.sessionID, bus.TypeAddressResponse, env.RequestID, payload)
		if err != nil {
			logger.Error(ctx, "failed to encode address response", "error", err)
			return
		}

		if err := r.bus.Publish(ctx, resp); err != nil {
			logger.Error(ctx, "failed to publish address response", "error", err)
		}

	case bus.TypeSetEnabled:
		var enabled bool
		if err := env.Decode(&enabled); err != nil {
			logger.Warn(ctx, "invalid interception toggle", "error", err)
			return
		}

		r.proxy.SetEnabled(enabled)
		logger.Info(ctx, "interception toggled", "session.id", r.sessionID, "interception.enabled", enabled)
	}
}
