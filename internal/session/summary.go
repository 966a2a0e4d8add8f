package session

import (
	"time"

	"github.com/abhisek/rehearse/internal/spacedrep"
)

// Summary holds the data displayed on the summary screen and stored in the
// session history.
type Summary struct {
	SessionID string
	SetName   string
	Duration  time.Duration
	Stats     Stats
	Accuracy  float64
	Mastery   spacedrep.Summary
}

// Summary reports the session's results so far.
func (s *Session) Summary(elapsed time.Duration) *Summary {
	return &Summary{
		SessionID: s.id,
		SetName:   s.set.Name,
		Duration:  elapsed,
		Stats:     s.stats,
		Accuracy:  s.stats.Accuracy(),
		Mastery:   s.sched.Summary(),
	}
}
