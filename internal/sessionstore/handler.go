package sessionstore

import (
	"context"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/bus"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
)

// handle serves one envelope. Failures are logged and left unanswered, so
// the requester runs into its deadline and carries on without batching.
func (s *service) handle(ctx context.Context, env bus.Envelope) {
	ctx = logger.Derive(ctx,
		"session.id", s.sessionID,
		"message.type", env.Type,
		"request.id", env.RequestID,
	)

	switch env.Type {
	case bus.TypeGetBatch:
		state, err := s.GetBatchState(ctx)
		if err != nil {
			logger.Error(ctx, "failed to load batch", "error", err)
			return
		}
		s.reply(ctx, env, bus.TypeBatchResponse, state)

	case bus.TypeFindApproval:
		var q batch.AllowanceQuery
		if err := env.Decode(&q); err != nil {
			logger.Warn(ctx, "invalid allowance query", "error", err)
			return
		}

		match, err := s.FindApprovalByMatch(ctx, q)
		if err != nil {
			logger.Error(ctx, "failed to search batch", "error", err)
			return
		}
		s.reply(ctx, env, bus.TypeApprovalMatch, match)

	case bus.TypeCaptureApproval:
		var a batch.Approval
		if err := env.Decode(&a); err != nil {
			logger.Warn(ctx, "invalid approval", "error", err)
			return
		}

		if err := s.CaptureApproval(ctx, a); err != nil {
			logger.Error(ctx, "failed to capture approval", "error", err)
		}

	case bus.TypeResetBatch:
		if err := s.ResetBatch(ctx); err != nil {
			logger.Error(ctx, "failed to reset batch", "error", err)
		}
	}
}

func (s *service) reply(ctx context.Context, req bus.Envelope, t bus.MessageType, payload any) {
	resp, err := bus.NewEnvelope(s.sessionID, t, req.RequestID, payload)
	if err != nil {
		logger.Error(ctx, "failed to encode response", "error", err)
		return
	}

	if err := s.bus.Publish(ctx, resp); err != nil {
		logger.Error(ctx, "failed to publish response", "error", err)
	}
}
