package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/rehearse/internal/session"
)

// NewSessionRecord builds a SessionRecord from a session summary.
func NewSessionRecord(sum *session.Summary, spaced bool, now time.Time) SessionRecord {
	return SessionRecord{
		ID:        sum.SessionID,
		SetName:   sum.SetName,
		Spaced:    spaced,
		Reviewed:  sum.Stats.TotalReviewed,
		Correct:   sum.Stats.Correct,
		Incorrect: sum.Stats.Incorrect,
		Overrides: sum.Stats.UserOverrides,
		Mastered:  sum.Mastery.MasteredItems,
		Total:     sum.Mastery.TotalItems,
		Duration:  sum.Duration,
		Timestamp: now,
	}
}

type sessionRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *sessionRepo) AppendSession(ctx context.Context, rec SessionRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, sequence, set_name, spaced, reviewed, correct, incorrect,
			overrides, mastered, total, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, seq, rec.SetName, rec.Spaced, rec.Reviewed, rec.Correct, rec.Incorrect,
		rec.Overrides, rec.Mastered, rec.Total, rec.Duration.Milliseconds(), rec.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, opts.To.UnixMilli())
	}

	q := `SELECT id, set_name, spaced, reviewed, correct, incorrect, overrides,
		mastered, total, duration_ms, created_at FROM sessions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, sequence DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec        SessionRecord
			durationMs int64
			createdAt  int64
		)
		if err := rows.Scan(&rec.ID, &rec.SetName, &rec.Spaced, &rec.Reviewed, &rec.Correct,
			&rec.Incorrect, &rec.Overrides, &rec.Mastered, &rec.Total, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		rec.Timestamp = time.UnixMilli(createdAt)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}
