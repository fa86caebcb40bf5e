// Package selector derives 4-byte function selectors from signatures.
package selector

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/txbatch/internal/pkg/abi"
	"github.com/gabapcia/txbatch/internal/pkg/keccak"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/provider"
)

// ExecuteSignature is the aggregator entry point.
const ExecuteSignature = "execute(address[],bytes[])"

// ErrSelectorUnavailable is returned when no hashing path produced a selector.
var ErrSelectorUnavailable = errors.New("selector unavailable")

// Resolver returns the selector of a signature, hashing it at most once per
// process.
type Resolver interface {
	Resolve(ctx context.Context, signature string) (abi.Selector, error)
}

type resolver struct {
	hasher        provider.Hasher
	localFallback bool

	mu    sync.Mutex
	cache map[string]abi.Selector
}

var _ Resolver = (*resolver)(nil)

// Option configures a Resolver.
type Option func(*resolver)

// WithHasher prefers h over local hashing.
func WithHasher(h provider.Hasher) Option {
	return func(r *resolver) {
		r.hasher = h
	}
}

// WithoutLocalFallback disables local hashing, so resolution fails when
// the hasher does.
func WithoutLocalFallback() Option {
	return func(r *resolver) {
		r.localFallback = false
	}
}

// NewResolver returns a Resolver that hashes locally unless configured otherwise.
func NewResolver(opts ...Option) *resolver {
	r := &resolver{
		localFallback: true,
		cache:         make(map[string]abi.Selector),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *resolver) cached(signature string) (abi.Selector, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.cache[signature]
	return s, ok
}

func (r *resolver) store(signature string, s abi.Selector) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache[signature] = s
}

// Resolve returns the selector of signature, caching it per signature.
func (r *resolver) Resolve(ctx context.Context, signature string) (abi.Selector, error) {
	if s, ok := r.cached(signature); ok {
		return s, nil
	}

	s, err := r.resolve(ctx, signature)
	if err != nil {
		return abi.Selector{}, err
	}

	r.store(signature, s)
	return s, nil
}

func (r *resolver) resolve(ctx context.Context, signature string) (abi.Selector, error) {
	var errs []error

	if r.hasher != nil {
		s, err := r.hashRemote(ctx, signature)
		if err == nil {
			return s, nil
		}

		logger.Debug(ctx, "provider hashing failed",
			"selector.signature", signature,
			"error", err,
		)
		errs = append(errs, err)
	}

	if r.localFallback {
		digest := keccak.Sum256([]byte(signature))
		s, _ := abi.SelectorFromBytes(digest[:])
		return s, nil
	}

	return abi.Selector{}, errors.Join(append([]error{ErrSelectorUnavailable}, errs...)...)
}

func (r *resolver) hashRemote(ctx context.Context, signature string) (s abi.Selector, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("hasher panicked: %v", p)
		}
	}()

	digest, err := r.hasher.Keccak256(ctx, []byte(signature))
	if err != nil {
		return abi.Selector{}, err
	}

	s, ok := abi.SelectorFromBytes(digest)
	if !ok {
		return abi.Selector{}, fmt.Errorf("hash of %d bytes is too short for a selector", len(digest))
	}
	return s, nil
}
