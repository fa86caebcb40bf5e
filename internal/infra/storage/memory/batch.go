// Package memory keeps session batches in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/pkg/types"
)

// BatchStorage is a process-local batch store. Batches live as long as
// the process.
type BatchStorage struct {
	mu      sync.Mutex
	batches types.DefaultMap[string, *batch.State]
}

// NewBatchStorage returns an empty BatchStorage.
func NewBatchStorage() *BatchStorage {
	return &BatchStorage{
		batches: types.NewDefaultMap[string](func() *batch.State { return &batch.State{} }),
	}
}

// LoadBatch returns a copy of the session state.
func (s *BatchStorage) LoadBatch(_ context.Context, sessionID string) (batch.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.batches.Has(sessionID) {
		return batch.State{}, nil
	}

	state := s.batches.Get(sessionID)
	return batch.State{
		Active:    state.Active,
		Approvals: append([]batch.Approval(nil), state.Approvals...),
	}, nil
}

// AppendApproval appends a and marks the batch active.
func (s *BatchStorage) AppendApproval(_ context.Context, sessionID string, a batch.Approval) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.batches.Get(sessionID)
	state.Approvals = append(state.Approvals, a)

	activated := !state.Active
	state.Active = true
	return activated, nil
}

// ResetBatch forgets the session.
func (s *BatchStorage) ResetBatch(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.batches.Delete(sessionID)
	return nil
}
