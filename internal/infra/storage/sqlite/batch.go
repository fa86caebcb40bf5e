// Package sqlite keeps session batches in a SQLite database file, so a
// batch survives restarts of a single-node session store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/sessionstore"

	_ "modernc.org/sqlite"
)

// busyTimeoutMillis bounds how long a write waits on a locked database.
const busyTimeoutMillis = 5000

type store struct {
	db *sql.DB
}

var _ sessionstore.Storage = (*store)(nil)

// Open opens (or creates) the database at dsn and applies the schema.
// Writes go through a single connection, which serializes appends.
func Open(ctx context.Context, dsn string) (*store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMillis)); err != nil {
		return nil, errors.Join(fmt.Errorf("set busy_timeout: %w", err), db.Close())
	}

	if err := migrate(ctx, db); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return &store{db: db}, nil
}

// Close closes the database.
func (s *store) Close() error {
	return s.db.Close()
}

// LoadBatch reads the session approvals in capture order.
func (s *store) LoadBatch(ctx context.Context, sessionID string) (state batch.State, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return batch.State{}, fmt.Errorf("begin tx load batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var startedAt int64
	err = tx.QueryRowContext(ctx, `SELECT started_at FROM batches WHERE session_id = ?`, sessionID).Scan(&startedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return batch.State{}, nil
	case err != nil:
		return batch.State{}, fmt.Errorf("query batch: %w", err)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT record
		FROM approvals
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return batch.State{}, fmt.Errorf("query approvals: %w", err)
	}
	defer rows.Close()

	approvals := make([]batch.Approval, 0)
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return batch.State{}, fmt.Errorf("scan approval: %w", err)
		}

		var a batch.Approval
		if err := json.Unmarshal([]byte(record), &a); err != nil {
			return batch.State{}, fmt.Errorf("decode approval %d: %w", len(approvals), err)
		}
		approvals = append(approvals, a)
	}
	if err := rows.Err(); err != nil {
		return batch.State{}, fmt.Errorf("iterate approvals: %w", err)
	}

	return batch.State{Active: true, Approvals: approvals}, nil
}

// AppendApproval stores a and marks the batch active in one transaction.
// The batch row is only inserted by the first append, which is how the
// activation is detected.
func (s *store) AppendApproval(ctx context.Context, sessionID string, a batch.Approval) (activated bool, err error) {
	record, err := json.Marshal(a)
	if err != nil {
		return false, fmt.Errorf("encode approval: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx append approval: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO batches(session_id, started_at)
		VALUES(?, ?)
		ON CONFLICT(session_id) DO NOTHING
	`, sessionID, a.CapturedAt.UnixMilli())
	if err != nil {
		return false, fmt.Errorf("activate batch: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("activate batch: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO approvals(session_id, approval_id, captured_at, record)
		VALUES(?, ?, ?, ?)
	`, sessionID, a.ID, a.CapturedAt.UnixMilli(), string(record)); err != nil {
		return false, fmt.Errorf("insert approval: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit append approval: %w", err)
	}

	return inserted == 1, nil
}

// ResetBatch deletes the session approvals and its batch row.
func (s *store) ResetBatch(ctx context.Context, sessionID string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx reset batch: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM approvals WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete approvals: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM batches WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit reset batch: %w", err)
	}
	return nil
}
