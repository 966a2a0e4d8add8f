package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/rehearse/internal/typing"
)

// NewHighScore builds a HighScore from a typing-test result.
func NewHighScore(name string, r typing.Result, lang typing.Language, diff typing.Difficulty, now time.Time) HighScore {
	return HighScore{
		ID:         uuid.New().String(),
		Name:       name,
		WPM:        r.WPM,
		CPM:        r.CPM,
		Accuracy:   r.Accuracy,
		Language:   lang.Code(),
		Difficulty: string(diff),
		Duration:   r.Duration,
		Timestamp:  now,
	}
}

type highScoreRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

const highScoreColumns = `id, name, wpm, cpm, accuracy, language, difficulty, duration_ms, created_at`

func (r *highScoreRepo) Add(ctx context.Context, hs HighScore, keep int) error {
	if hs.ID == "" {
		hs.ID = uuid.New().String()
	}
	if hs.Timestamp.IsZero() {
		hs.Timestamp = time.Now()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	seq, err := r.seq.nextIn(ctx, tx)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO highscores (`+highScoreColumns+`, sequence) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		hs.ID, hs.Name, hs.WPM, hs.CPM, hs.Accuracy, hs.Language, hs.Difficulty,
		hs.Duration.Milliseconds(), hs.Timestamp.UnixMilli(), seq,
	)
	if err != nil {
		return fmt.Errorf("insert highscore: %w", err)
	}

	if keep > 0 {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM highscores WHERE id NOT IN (
				SELECT id FROM highscores ORDER BY wpm DESC, sequence ASC LIMIT ?
			)`, keep)
		if err != nil {
			return fmt.Errorf("prune highscores: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit highscore: %w", err)
	}
	return nil
}

func (r *highScoreRepo) Top(ctx context.Context, n int) ([]HighScore, error) {
	q := `SELECT ` + highScoreColumns + ` FROM highscores ORDER BY wpm DESC, sequence ASC`
	var args []any
	if n > 0 {
		q += ` LIMIT ?`
		args = append(args, n)
	}
	return r.query(ctx, q, args...)
}

func (r *highScoreRepo) Filtered(ctx context.Context, language, difficulty string) ([]HighScore, error) {
	return r.query(ctx,
		`SELECT `+highScoreColumns+` FROM highscores
		WHERE (? = '' OR language = ?) AND (? = '' OR difficulty = ?)
		ORDER BY wpm DESC, sequence ASC`,
		language, language, difficulty, difficulty,
	)
}

func (r *highScoreRepo) Statistics(ctx context.Context) (HighScoreStats, error) {
	var st HighScoreStats
	err := r.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(AVG(wpm), 0),
		COALESCE(AVG(accuracy), 0),
		COALESCE(MAX(wpm), 0),
		COALESCE(SUM(CASE WHEN difficulty = 'easy' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN difficulty = 'medium' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN difficulty = 'hard' THEN 1 ELSE 0 END), 0)
		FROM highscores`,
	).Scan(&st.TotalTests, &st.AvgWPM, &st.AvgAccuracy, &st.BestWPM,
		&st.EasyCount, &st.MediumCount, &st.HardCount)
	if err != nil {
		return HighScoreStats{}, fmt.Errorf("query highscore statistics: %w", err)
	}
	return st, nil
}

func (r *highScoreRepo) query(ctx context.Context, q string, args ...any) ([]HighScore, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query highscores: %w", err)
	}
	defer rows.Close()

	var out []HighScore
	for rows.Next() {
		var (
			hs         HighScore
			durationMs int64
			createdAt  int64
		)
		if err := rows.Scan(&hs.ID, &hs.Name, &hs.WPM, &hs.CPM, &hs.Accuracy,
			&hs.Language, &hs.Difficulty, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan highscore: %w", err)
		}
		hs.Duration = time.Duration(durationMs) * time.Millisecond
		hs.Timestamp = time.UnixMilli(createdAt)
		out = append(out, hs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate highscores: %w", err)
	}
	return out, nil
}
