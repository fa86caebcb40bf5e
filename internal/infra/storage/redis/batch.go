package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/sessionstore"

	"github.com/redis/go-redis/v9"
)

// approvalsKey holds the session's approvals as a list of JSON records in
// capture order.
//
// Format: "<namespace>:batch:<session>:approvals"
func (c *client) approvalsKey(sessionID string) string {
	return fmt.Sprintf("%s:batch:%s:approvals", c.namespace, sessionID)
}

// activeKey is set while the session's batch is active.
//
// Format: "<namespace>:batch:<session>:active"
func (c *client) activeKey(sessionID string) string {
	return fmt.Sprintf("%s:batch:%s:active", c.namespace, sessionID)
}

// decodeApprovals parses the JSON records of an approvals list.
func decodeApprovals(records []string) ([]batch.Approval, error) {
	approvals := make([]batch.Approval, 0, len(records))
	for i, record := range records {
		var a batch.Approval
		if err := json.Unmarshal([]byte(record), &a); err != nil {
			return nil, fmt.Errorf("decode approval %d: %w", i, err)
		}
		approvals = append(approvals, a)
	}
	return approvals, nil
}

// LoadBatch reads the approvals list and the active flag in one MULTI
// block, so both come from the same point in time.
func (c *client) LoadBatch(ctx context.Context, sessionID string) (batch.State, error) {
	var (
		records *redis.StringSliceCmd
		active  *redis.IntCmd
	)
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		records = pipe.LRange(ctx, c.approvalsKey(sessionID), 0, -1)
		active = pipe.Exists(ctx, c.activeKey(sessionID))
		return nil
	})
	if err != nil {
		return batch.State{}, err
	}

	approvals, err := decodeApprovals(records.Val())
	if err != nil {
		return batch.State{}, err
	}

	return batch.State{
		Active:    active.Val() > 0,
		Approvals: approvals,
	}, nil
}

// AppendApproval pushes the approval and sets the active flag in one MULTI
// block, refreshing the TTL when one is set. SET with GET returns the previous flag, which is missing only for
// the transaction that activated the batch.
func (c *client) AppendApproval(ctx context.Context, sessionID string, a batch.Approval) (bool, error) {
	record, err := json.Marshal(a)
	if err != nil {
		return false, fmt.Errorf("encode approval: %w", err)
	}

	var previous *redis.StatusCmd
	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, c.approvalsKey(sessionID), record)
		previous = pipe.SetArgs(ctx, c.activeKey(sessionID), 1, redis.SetArgs{Get: true})
		if c.ttl > 0 {
			pipe.Expire(ctx, c.approvalsKey(sessionID), c.ttl)
			pipe.Expire(ctx, c.activeKey(sessionID), c.ttl)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, err
	}

	return errors.Is(previous.Err(), redis.Nil), nil
}

// ResetBatch deletes both keys of the session.
func (c *client) ResetBatch(ctx context.Context, sessionID string) error {
	return c.conn.Del(ctx, c.approvalsKey(sessionID), c.activeKey(sessionID)).Err()
}

// Compile-time assertion to ensure client implements the sessionstore.Storage interface.
var _ sessionstore.Storage = new(client)
