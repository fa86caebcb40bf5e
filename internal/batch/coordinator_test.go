package batch

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/txbatch/internal/bus"
	"github.com/gabapcia/txbatch/internal/pkg/logger"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "session-1"

func TestMain(m *testing.M) {
	_ = logger.Init("error")
	os.Exit(m.Run())
}

// fakeStore answers batch and allowance queries from a fixed state and
// records captured approvals.
type fakeStore struct {
	mu       sync.Mutex
	state    State
	captured []Approval
}

func (s *fakeStore) serve(t *testing.T, b bus.Bus) {
	t.Helper()

	ch, err := b.Subscribe(t.Context())
	require.NoError(t, err)

	go func() {
		for env := range ch {
			s.handle(b, env)
		}
	}()
}

func (s *fakeStore) handle(b bus.Bus, env bus.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		respType bus.MessageType
		payload  any
	)
	switch env.Type {
	case bus.TypeGetBatch:
		respType, payload = bus.TypeBatchResponse, s.state
	case bus.TypeFindApproval:
		var q AllowanceQuery
		if err := env.Decode(&q); err != nil {
			return
		}
		respType, payload = bus.TypeApprovalMatch, s.state.Find(q)
	case bus.TypeCaptureApproval:
		var a Approval
		if err := env.Decode(&a); err == nil {
			s.captured = append(s.captured, a)
		}
		return
	default:
		return
	}

	resp, err := bus.NewEnvelope(env.SessionID, respType, env.RequestID, payload)
	if err != nil {
		return
	}
	_ = b.Publish(context.Background(), resp)
}

func (s *fakeStore) capturedApprovals() []Approval {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Approval(nil), s.captured...)
}

func startCoordinator(t *testing.T, b bus.Bus, opts ...Option) *coordinator {
	t.Helper()

	c := NewCoordinator(b, testSession, opts...)
	require.NoError(t, c.Start(t.Context()))
	t.Cleanup(c.Close)
	return c
}

func TestCoordinator_GetBatchState(t *testing.T) {
	t.Run("should return the store's batch", func(t *testing.T) {
		b := bus.NewMemory()
		a := NewApproval(approvalTx(), &spender, uint256.NewInt(1000))
		store := &fakeStore{state: State{Active: true, Approvals: []Approval{a}}}
		store.serve(t, b)

		c := startCoordinator(t, b)

		state, ok := c.GetBatchState(t.Context())
		require.True(t, ok)
		assert.True(t, state.Active)
		require.Len(t, state.Approvals, 1)
		assert.Equal(t, a.ID, state.Approvals[0].ID)
		assert.Equal(t, a.CallData, state.Approvals[0].CallData)
	})

	t.Run("should report unknown when the store is silent", func(t *testing.T) {
		b := bus.NewMemory()
		c := startCoordinator(t, b, WithTimeout(50*time.Millisecond))

		start := time.Now()
		state, ok := c.GetBatchState(t.Context())

		assert.False(t, ok)
		assert.Zero(t, state)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("should report unknown before start", func(t *testing.T) {
		c := NewCoordinator(bus.NewMemory(), testSession)

		_, ok := c.GetBatchState(t.Context())
		assert.False(t, ok)
	})
}

func TestCoordinator_FindApproval(t *testing.T) {
	a := NewApproval(approvalTx(), &spender, uint256.NewInt(1000))

	t.Run("should return the matching approval", func(t *testing.T) {
		b := bus.NewMemory()
		(&fakeStore{state: State{Active: true, Approvals: []Approval{a}}}).serve(t, b)
		c := startCoordinator(t, b)

		match := c.FindApproval(t.Context(), AllowanceQuery{Token: token, Owner: owner, Spender: spender})
		require.NotNil(t, match)
		assert.Equal(t, a.ID, match.ID)
	})

	t.Run("should return nil when nothing matches", func(t *testing.T) {
		b := bus.NewMemory()
		(&fakeStore{state: State{Active: true, Approvals: []Approval{a}}}).serve(t, b)
		c := startCoordinator(t, b)

		assert.Nil(t, c.FindApproval(t.Context(), AllowanceQuery{Token: token, Owner: owner, Spender: owner}))
	})

	t.Run("should return nil when the store is silent", func(t *testing.T) {
		c := startCoordinator(t, bus.NewMemory(), WithTimeout(20*time.Millisecond))
		assert.Nil(t, c.FindApproval(t.Context(), AllowanceQuery{Token: token, Owner: owner, Spender: spender}))
	})
}

func TestCoordinator_CaptureApproval(t *testing.T) {
	t.Run("should publish without waiting for the store", func(t *testing.T) {
		b := bus.NewMemory()
		store := &fakeStore{}
		store.serve(t, b)
		c := startCoordinator(t, b)

		a := NewApproval(approvalTx(), &spender, uint256.NewInt(5))
		require.NoError(t, c.CaptureApproval(t.Context(), a))

		assert.Eventually(t, func() bool {
			return len(store.capturedApprovals()) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, a.ID, store.capturedApprovals()[0].ID)
	})

	t.Run("should fail on a closed bus", func(t *testing.T) {
		b := bus.NewMemory()
		c := startCoordinator(t, b)
		b.Close()

		err := c.CaptureApproval(t.Context(), NewApproval(approvalTx(), &spender, nil))
		assert.ErrorIs(t, err, bus.ErrBusClosed)
	})
}
