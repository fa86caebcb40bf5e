package sessionstore

import (
	"context"

	"github.com/gabapcia/txbatch/internal/batch"
)

// Storage persists the batch of each session.
//
// Implementations must make AppendApproval atomic: the append and the
// idle-to-active flip happen together, and activated is true for exactly
// one caller per batch.
type Storage interface {
	// LoadBatch returns the session's batch. Unknown sessions are idle and empty.
	LoadBatch(ctx context.Context, sessionID string) (batch.State, error)

	// AppendApproval adds a to the end of the session's batch and marks it
	// active. It reports whether this call activated an idle batch.
	AppendApproval(ctx context.Context, sessionID string, a batch.Approval) (activated bool, err error)

	// ResetBatch empties the session's batch and marks it idle.
	ResetBatch(ctx context.Context, sessionID string) error
}

// Notifier is told when a batch goes from idle to active.
type Notifier interface {
	NotifyBatchStarted(ctx context.Context, sessionID string, first batch.Approval) error
}
