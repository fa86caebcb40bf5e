// Package storagetest checks that a sessionstore.Storage keeps the batch
// contract. Backends call Run from their own tests; approval fixtures live
// in batch/batchtest.
package storagetest

import (
	"sync"
	"testing"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/batch/batchtest"
	"github.com/gabapcia/txbatch/internal/sessionstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises newStorage against the Storage contract. Each subtest gets
// its own storage.
func Run(t *testing.T, newStorage func(t *testing.T) sessionstore.Storage) {
	t.Run("should load an unknown session as idle and empty", func(t *testing.T) {
		s := newStorage(t)

		state, err := s.LoadBatch(t.Context(), "unknown")
		require.NoError(t, err)
		assert.False(t, state.Active)
		assert.Empty(t, state.Approvals)
	})

	t.Run("should activate only on the first append", func(t *testing.T) {
		s := newStorage(t)

		activated, err := s.AppendApproval(t.Context(), "s", batchtest.Approval(1))
		require.NoError(t, err)
		assert.True(t, activated)

		activated, err = s.AppendApproval(t.Context(), "s", batchtest.Approval(2))
		require.NoError(t, err)
		assert.False(t, activated)
	})

	t.Run("should keep approvals in capture order", func(t *testing.T) {
		s := newStorage(t)
		first, second, third := batchtest.Approval(1), batchtest.Approval(2), batchtest.Approval(3)

		for _, a := range []batch.Approval{first, second, third} {
			_, err := s.AppendApproval(t.Context(), "s", a)
			require.NoError(t, err)
		}

		state, err := s.LoadBatch(t.Context(), "s")
		require.NoError(t, err)
		assert.True(t, state.Active)
		require.Len(t, state.Approvals, 3)
		assert.Equal(t, first.ID, state.Approvals[0].ID)
		assert.Equal(t, second.ID, state.Approvals[1].ID)
		assert.Equal(t, third.ID, state.Approvals[2].ID)
	})

	t.Run("should store the same approval twice", func(t *testing.T) {
		s := newStorage(t)
		a := batchtest.Approval(1)

		_, err := s.AppendApproval(t.Context(), "s", a)
		require.NoError(t, err)
		_, err = s.AppendApproval(t.Context(), "s", a)
		require.NoError(t, err)

		state, err := s.LoadBatch(t.Context(), "s")
		require.NoError(t, err)
		assert.Len(t, state.Approvals, 2)
	})

	t.Run("should round trip every approval field", func(t *testing.T) {
		s := newStorage(t)
		a := batchtest.Approval(1000)

		_, err := s.AppendApproval(t.Context(), "s", a)
		require.NoError(t, err)

		state, err := s.LoadBatch(t.Context(), "s")
		require.NoError(t, err)
		require.Len(t, state.Approvals, 1)

		got := state.Approvals[0]
		assert.Equal(t, a.ID, got.ID)
		assert.True(t, a.CapturedAt.Equal(got.CapturedAt))
		assert.Equal(t, a.From, got.From)
		assert.Equal(t, a.To, got.To)
		assert.Equal(t, a.Token, got.Token)
		assert.Equal(t, a.Owner, got.Owner)
		assert.Equal(t, a.Spender, got.Spender)
		assert.Equal(t, a.CallData, got.CallData)
		assert.Equal(t, a.Amount.ToInt(), got.Amount.ToInt())
	})

	t.Run("should reset to idle and empty", func(t *testing.T) {
		s := newStorage(t)

		_, err := s.AppendApproval(t.Context(), "s", batchtest.Approval(1))
		require.NoError(t, err)
		require.NoError(t, s.ResetBatch(t.Context(), "s"))

		state, err := s.LoadBatch(t.Context(), "s")
		require.NoError(t, err)
		assert.False(t, state.Active)
		assert.Empty(t, state.Approvals)

		activated, err := s.AppendApproval(t.Context(), "s", batchtest.Approval(2))
		require.NoError(t, err)
		assert.True(t, activated, "a reset batch should activate again")
	})

	t.Run("should keep sessions apart", func(t *testing.T) {
		s := newStorage(t)

		_, err := s.AppendApproval(t.Context(), "a", batchtest.Approval(1))
		require.NoError(t, err)

		state, err := s.LoadBatch(t.Context(), "b")
		require.NoError(t, err)
		assert.False(t, state.Active)

		require.NoError(t, s.ResetBatch(t.Context(), "b"))

		state, err = s.LoadBatch(t.Context(), "a")
		require.NoError(t, err)
		assert.Len(t, state.Approvals, 1)
	})

	t.Run("should activate exactly once under concurrent appends", func(t *testing.T) {
		s := newStorage(t)

		const n = 16
		var (
			wg          sync.WaitGroup
			mu          sync.Mutex
			activations int
		)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()

				activated, err := s.AppendApproval(t.Context(), "s", batchtest.Approval(uint64(i)))
				if !assert.NoError(t, err) {
					return
				}
				if activated {
					mu.Lock()
					activations++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, activations)

		state, err := s.LoadBatch(t.Context(), "s")
		require.NoError(t, err)
		assert.Len(t, state.Approvals, n)
	})
}
