package sessionstore

import (
	"context"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
)

// BatchStartedMessage is the text of the batch started notification.
const BatchStartedMessage = "New approval captured. Batch started."

type logNotifier struct{}

var _ Notifier = logNotifier{}

// NewLogNotifier returns a Notifier that writes the notification to the log.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

// NotifyBatchStarted logs the batch start.
func (logNotifier) NotifyBatchStarted(ctx context.Context, sessionID string, first batch.Approval) error {
	logger.Info(ctx, BatchStartedMessage,
		"session.id", sessionID,
		"approval.id", first.ID,
		"approval.token", first.Token,
		"approval.spender", first.Spender,
	)
	return nil
}
