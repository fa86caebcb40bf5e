// Package chflow provides context-aware helpers for moving values through
// channels, so that blocked senders and receivers give up when their
// context is canceled or its deadline passes.
package chflow

import "context"

// Receive waits for a value on ch or for ctx to be done. It reports false
// when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first. It reports whether the
// value was sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Offer delivers data on ch only if it can do so without blocking. It
// reports whether the value was sent.
func Offer[T any](ch chan<- T, data T) bool {
	select {
	case ch <- data:
		return true
	default:
		return false
	}
}
