package sessionstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/bus"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
)

// GetBatchState loads the batch persisted for the session.
func (s *service) GetBatchState(ctx context.Context) (batch.State, error) {
	state, err := s.storage.LoadBatch(ctx, s.sessionID)
	if err != nil {
		return batch.State{}, err
	}

	if state.Approvals == nil {
		state.Approvals = []batch.Approval{}
	}
	return state, nil
}

// CaptureApproval fills the approval's defaults, validates it and appends
// it. Capturing the same approval twice stores it twice.
func (s *service) CaptureApproval(ctx context.Context, a batch.Approval) error {
	a = a.WithDefaults()
	if err := validator.Validate(a); err != nil {
		return err
	}

	activated, err := s.storage.AppendApproval(ctx, s.sessionID, a)
	if err != nil {
		return fmt.Errorf("append approval: %w", err)
	}

	logger.Debug(ctx, "approval captured",
		"session.id", s.sessionID,
		"approval.id", a.ID,
		"batch.activated", activated,
	)

	if !activated {
		return nil
	}

	if err := s.notifier.NotifyBatchStarted(ctx, s.sessionID, a); err != nil {
		logger.Warn(ctx, "failed to notify batch start",
			"session.id", s.sessionID,
			"error", err,
		)
	}
	return nil
}

// ResetBatch empties the persisted batch.
func (s *service) ResetBatch(ctx context.Context) error {
	if err := s.storage.ResetBatch(ctx, s.sessionID); err != nil {
		return err
	}

	logger.Info(ctx, "batch reset", "session.id", s.sessionID)
	return nil
}

// FindApprovalByMatch returns the captured approval matching q, or nil.
func (s *service) FindApprovalByMatch(ctx context.Context, q batch.AllowanceQuery) (*batch.Approval, error) {
	state, err := s.storage.LoadBatch(ctx, s.sessionID)
	if err != nil {
		return nil, err
	}
	return state.Find(q), nil
}

// SetInterception publishes the toggle to the proxy side.
func (s *service) SetInterception(ctx context.Context, enabled bool) error {
	env, err := bus.NewEnvelope(s.sessionID, bus.TypeSetEnabled, "", enabled)
	if err != nil {
		return err
	}
	return s.bus.Publish(ctx, env)
}

// SelectedAddress asks the proxy side for the selected account.
func (s *service) SelectedAddress(ctx context.Context) (common.Address, error) {
	resp, err := s.correlator.RoundTrip(ctx, bus.TypeGetAddress, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("get selected address: %w", err)
	}

	var addr *common.Address
	if err := resp.Decode(&addr); err != nil && !errors.Is(err, bus.ErrEmptyPayload) {
		return common.Address{}, err
	}

	if addr == nil {
		return common.Address{}, ErrNoSelectedAddress
	}
	return *addr, nil
}
