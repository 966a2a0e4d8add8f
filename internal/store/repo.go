package store

import (
	"context"
	"time"
)

// QueryOpts configures history queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// HighScore is one stored typing-test result.
type HighScore struct {
	ID         string
	Name       string
	WPM        float64
	CPM        float64
	Accuracy   float64
	Language   string // language code, e.g. "en"
	Difficulty string // "easy", "medium" or "hard"
	Duration   time.Duration
	Timestamp  time.Time
}

// HighScoreStats aggregates every stored high score.
type HighScoreStats struct {
	TotalTests  int
	AvgWPM      float64
	AvgAccuracy float64
	BestWPM     float64
	EasyCount   int
	MediumCount int
	HardCount   int
}

// HighScoreRepo manages typing-test high scores, best first.
type HighScoreRepo interface {
	// Add stores a score, then keeps only the best keep scores by WPM.
	// keep <= 0 disables pruning. Missing ID and Timestamp are filled in.
	Add(ctx context.Context, hs HighScore, keep int) error

	// Top returns the n best scores. n <= 0 returns all.
	Top(ctx context.Context, n int) ([]HighScore, error)

	// Filtered returns scores for a language and difficulty, best first.
	// An empty filter matches everything.
	Filtered(ctx context.Context, language, difficulty string) ([]HighScore, error)

	// Statistics aggregates all stored scores.
	Statistics(ctx context.Context) (HighScoreStats, error)
}

// SessionRecord is the stored outcome of one learning session.
type SessionRecord struct {
	ID        string
	SetName   string
	Spaced    bool
	Reviewed  int
	Correct   int
	Incorrect int
	Overrides int
	Mastered  int
	Total     int
	Duration  time.Duration
	Timestamp time.Time
}

// Accuracy returns the percentage of correct answers, or 0 when nothing was
// reviewed.
func (r SessionRecord) Accuracy() float64 {
	if r.Reviewed == 0 {
		return 0
	}
	return 100 * float64(r.Correct) / float64(r.Reviewed)
}

// SessionRepo stores the history of learning sessions.
type SessionRepo interface {
	// AppendSession records a finished session. A missing Timestamp is set
	// to now; a missing ID gets a fresh UUID.
	AppendSession(ctx context.Context, rec SessionRecord) error

	// RecentSessions returns sessions newest first.
	RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)
}
