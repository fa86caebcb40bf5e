package bus

import (
	"context"
	"errors"
	"sync"
)

// ErrBusClosed is returned when publishing to or subscribing on a closed bus.
var ErrBusClosed = errors.New("bus closed")

// Bus is a broadcast message channel.
type Bus interface {
	// Publish delivers env to every current subscriber without waiting for
	// them to consume it.
	Publish(ctx context.Context, env Envelope) error

	// Subscribe registers a subscriber before returning. The channel yields
	// envelopes in publish order and is closed once ctx is done.
	Subscribe(ctx context.Context) (<-chan Envelope, error)
}

// subscriber buffers envelopes without bound so publishers never block.
type subscriber struct {
	mu     sync.Mutex
	queue  []Envelope
	notify chan struct{}
	out    chan Envelope
}

func newSubscriber() *subscriber {
	return &subscriber{
		notify: make(chan struct{}, 1),
		out:    make(chan Envelope),
	}
}

func (s *subscriber) push(env Envelope) {
	s.mu.Lock()
	s.queue = append(s.queue, env)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscriber) pop() (Envelope, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return Envelope{}, false
	}

	env := s.queue[0]
	s.queue[0] = Envelope{}
	s.queue = s.queue[1:]
	return env, true
}

// pump moves queued envelopes to out until ctx is done.
func (s *subscriber) pump(ctx context.Context) {
	defer close(s.out)

	for {
		env, ok := s.pop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-s.notify:
				continue
			}
		}

		select {
		case <-ctx.Done():
			return
		case s.out <- env:
		}
	}
}

// memoryBus is an in-process Bus.
type memoryBus struct {
	mu          sync.RWMutex
	closed      bool
	nextID      uint64
	subscribers map[uint64]*subscriber
}

var _ Bus = (*memoryBus)(nil)

// Publish queues env for every current subscriber.
func (b *memoryBus) Publish(ctx context.Context, env Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	for _, sub := range b.subscribers {
		sub.push(env)
	}
	return nil
}

// Subscribe registers a subscriber until ctx ends.
func (b *memoryBus) Subscribe(ctx context.Context) (<-chan Envelope, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	id := b.nextID
	b.nextID++

	sub := newSubscriber()
	b.subscribers[id] = sub

	go func() {
		<-ctx.Done()

		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}()

	go sub.pump(ctx)
	return sub.out, nil
}

// Close rejects further publishes and subscriptions. Existing subscriptions
// still end with their contexts.
func (b *memoryBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
}

// NewMemory returns an in-process Bus.
func NewMemory() *memoryBus {
	return &memoryBus{
		subscribers: make(map[uint64]*subscriber),
	}
}
