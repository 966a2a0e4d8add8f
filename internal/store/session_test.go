package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/spacedrep"
)

func TestSession_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"German", "French", "Spanish"} {
		err := repo.AppendSession(ctx, SessionRecord{
			SetName:   name,
			Reviewed:  10,
			Correct:   7 + i,
			Incorrect: 3 - i,
			Total:     5,
			Mastered:  i,
			Duration:  time.Duration(i+1) * time.Minute,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	recs, err := repo.RecentSessions(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Spanish", recs[0].SetName)
	assert.Equal(t, "German", recs[2].SetName)
	assert.NotEmpty(t, recs[0].ID)
	assert.Equal(t, 3*time.Minute, recs[0].Duration)
	assert.InDelta(t, 90.0, recs[0].Accuracy(), 1e-9)

	recs, err = repo.RecentSessions(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Spanish", recs[0].SetName)

	recs, err = repo.RecentSessions(ctx, QueryOpts{From: base.Add(30 * time.Minute), To: base.Add(90 * time.Minute)})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "French", recs[0].SetName)
}

func TestSession_RecordFromSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sum := &session.Summary{
		SessionID: "3f1c7a0e-8a4b-4b7e-9f7a-2d1e0c9b8a76",
		SetName:   "Capitals",
		Duration:  95 * time.Second,
		Stats:     session.Stats{TotalReviewed: 4, Correct: 3, Incorrect: 1, UserOverrides: 1},
		Mastery:   spacedrep.Summary{TotalItems: 4, MasteredItems: 2, InProgressItems: 2},
	}
	now := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AppendSession(ctx, NewSessionRecord(sum, true, now)))

	recs, err := repo.RecentSessions(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	got := recs[0]
	assert.Equal(t, sum.SessionID, got.ID)
	assert.True(t, got.Spaced)
	assert.Equal(t, 4, got.Reviewed)
	assert.Equal(t, 1, got.Overrides)
	assert.Equal(t, 2, got.Mastered)
	assert.Equal(t, 4, got.Total)
	assert.True(t, now.Equal(got.Timestamp))
}

func TestSessionRecord_AccuracyEmpty(t *testing.T) {
	assert.Equal(t, 0.0, SessionRecord{}.Accuracy())
}
