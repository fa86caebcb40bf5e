// Package webhook posts the batch started notification to an HTTP endpoint.
//
// Deliveries are queued and sent by a background worker, so the session
// store never waits on the remote side.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/pkg/resilience/retry"
	httpclient "github.com/gabapcia/txbatch/internal/pkg/transport/http"
	"github.com/gabapcia/txbatch/internal/sessionstore"

	"github.com/hashicorp/go-retryablehttp"
)

// defaultQueueSize is the number of deliveries that may wait for the worker.
const defaultQueueSize = 64

var (
	// ErrNotifierAlreadyStarted is returned if Start is called more than once.
	ErrNotifierAlreadyStarted = errors.New("webhook notifier already started")

	// ErrNotifierNotStarted is returned when notifying before Start or after Close.
	ErrNotifierNotStarted = errors.New("webhook notifier not started")

	// ErrQueueFull is returned when the notification is dropped because
	// deliveries are backed up.
	ErrQueueFull = errors.New("webhook queue full")
)

// Payload is the JSON body posted for every activated batch.
type Payload struct {
	Message   string         `json:"message"`
	SessionID string         `json:"sessionId"`
	Approval  batch.Approval `json:"approval"`
}

// StatusError reports a non-2xx answer from the endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook answered %d: %s", e.StatusCode, e.Body)
}

type config struct {
	client    *retryablehttp.Client
	retry     retry.Retry
	queueSize int
}

// Option configures the notifier.
type Option func(*config)

// WithClient replaces the HTTP client. The default one does not retry by
// itself; retries belong to the notifier's Retry.
func WithClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.client = c
	}
}

// WithRetry replaces the retry policy wrapped around each delivery. The
// default makes three attempts.
func WithRetry(r retry.Retry) Option {
	return func(cfg *config) {
		cfg.retry = r
	}
}

// WithQueueSize bounds the deliveries waiting for the worker.
func WithQueueSize(n int) Option {
	return func(cfg *config) {
		cfg.queueSize = n
	}
}

type notifier struct {
	url    string
	client *retryablehttp.Client
	retry  retry.Retry
	queue  chan Payload

	mu        sync.Mutex
	isStarted bool
	closeFunc func()
}

var _ sessionstore.Notifier = (*notifier)(nil)

// New creates a notifier posting a Payload to url for every batch that
// becomes active.
//
// Parameters:
//   - url: the endpoint receiving the JSON POST.
//   - opts: optional settings (client, retry policy, queue size).
//
// Returns:
//   - A notifier that delivers once Start is called. Deliveries run on its
//     own worker, so NotifyBatchStarted never waits on HTTP.
func New(url string, opts ...Option) *notifier {
	cfg := config{
		client:    httpclient.NewClient(httpclient.WithRetryMax(0)),
		retry:     retry.New(retry.WithName("webhook")),
		queueSize: defaultQueueSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &notifier{
		url:    url,
		client: cfg.client,
		retry:  cfg.retry,
		queue:  make(chan Payload, max(cfg.queueSize, 1)),
	}
}

// Start runs the delivery worker until Close.
func (n *notifier) Start(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.isStarted {
		return ErrNotifierAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		for {
			select {
			case <-ctx.Done():
				return
			case p := <-n.queue:
				if err := n.deliver(ctx, p); err != nil {
					logger.Warn(ctx, "webhook delivery failed",
						"session.id", p.SessionID,
						"approval.id", p.Approval.ID,
						"error", err,
					)
				}
			}
		}
	}()

	n.closeFunc = func() {
		cancel()
		<-done
	}
	n.isStarted = true
	return nil
}

// Close stops the worker. Deliveries still queued are dropped.
func (n *notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.isStarted {
		return
	}

	n.closeFunc()
	n.isStarted = false
}

// NotifyBatchStarted queues the notification and returns without waiting
// for the delivery.
func (n *notifier) NotifyBatchStarted(_ context.Context, sessionID string, first batch.Approval) error {
	n.mu.Lock()
	started := n.isStarted
	n.mu.Unlock()

	if !started {
		return ErrNotifierNotStarted
	}

	p := Payload{
		Message:   sessionstore.BatchStartedMessage,
		SessionID: sessionID,
		Approval:  first,
	}

	select {
	case n.queue <- p:
		return nil
	default:
		return ErrQueueFull
	}
}

// deliver posts p until the endpoint accepts it. 4xx answers are final.
func (n *notifier) deliver(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	return n.retry.Execute(ctx, func(ctx context.Context) error {
		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}

		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return retry.Permanent(statusErr)
		}
		return statusErr
	})
}
