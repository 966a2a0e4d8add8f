package stats

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/typing"
)

// mockScoreRepo implements store.HighScoreRepo for testing.
type mockScoreRepo struct {
	scores         []store.HighScore
	err            error
	lastLanguage   string
	lastDifficulty string
}

func (m *mockScoreRepo) Add(context.Context, store.HighScore, int) error { return nil }
func (m *mockScoreRepo) Top(context.Context, int) ([]store.HighScore, error) {
	return m.scores, m.err
}
func (m *mockScoreRepo) Filtered(_ context.Context, language, difficulty string) ([]store.HighScore, error) {
	m.lastLanguage, m.lastDifficulty = language, difficulty
	return m.scores, m.err
}
func (m *mockScoreRepo) Statistics(context.Context) (store.HighScoreStats, error) {
	return store.HighScoreStats{TotalTests: len(m.scores), BestWPM: 88}, m.err
}

// mockSessionRepo implements store.SessionRepo for testing.
type mockSessionRepo struct {
	sessions []store.SessionRecord
}

func (m *mockSessionRepo) AppendSession(context.Context, store.SessionRecord) error { return nil }
func (m *mockSessionRepo) RecentSessions(context.Context, store.QueryOpts) ([]store.SessionRecord, error) {
	return m.sessions, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func loadedScreen(t *testing.T, scores store.HighScoreRepo, sessions store.SessionRepo) *StatsScreen {
	t.Helper()
	s := New(scores, sessions)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command from Init")
	}
	s.Update(cmd())
	return s
}

func TestStatsScreen_Title(t *testing.T) {
	s := New(nil, nil)
	if s.Title() != "Statistics" {
		t.Errorf("Title = %q, want %q", s.Title(), "Statistics")
	}
}

func TestStatsScreen_Loading(t *testing.T) {
	s := New(nil, nil)
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading view before data arrives")
	}
}

func TestStatsScreen_ShowsScores(t *testing.T) {
	scores := &mockScoreRepo{scores: []store.HighScore{
		{Name: "Ada", WPM: 88, Accuracy: 99, Language: "en", Difficulty: "hard", Timestamp: time.Now()},
	}}
	s := loadedScreen(t, scores, &mockSessionRepo{})

	view := s.View(120, 40)
	for _, want := range []string{"Ada", "88.0", "Best WPM: 88.0", "Language: All"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatsScreen_NoData(t *testing.T) {
	s := loadedScreen(t, &mockScoreRepo{}, &mockSessionRepo{})
	if !strings.Contains(s.View(120, 40), "No typing tests recorded yet.") {
		t.Error("expected empty statistics message")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !strings.Contains(s.View(120, 40), "No sessions yet") {
		t.Error("expected empty sessions message")
	}
}

func TestStatsScreen_SessionsTab(t *testing.T) {
	sessions := &mockSessionRepo{sessions: []store.SessionRecord{
		{SetName: "Animals", Reviewed: 4, Correct: 3, Total: 2, Mastered: 1, Timestamp: time.Now()},
	}}
	s := loadedScreen(t, &mockScoreRepo{}, sessions)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.tab != tabSessions {
		t.Fatal("Tab should switch to the sessions view")
	}
	if !strings.Contains(s.View(120, 40), "Animals") {
		t.Error("sessions view should list the set name")
	}
}

func TestStatsScreen_Filters(t *testing.T) {
	scores := &mockScoreRepo{}
	s := loadedScreen(t, scores, nil)

	_, cmd := s.Update(keyPress('l'))
	if cmd == nil {
		t.Fatal("changing the language filter should reload")
	}
	s.Update(cmd())
	if scores.lastLanguage != "en" {
		t.Errorf("language filter = %q, want en", scores.lastLanguage)
	}

	_, cmd = s.Update(keyPress('d'))
	s.Update(cmd())
	if scores.lastDifficulty != "easy" {
		t.Errorf("difficulty filter = %q, want easy", scores.lastDifficulty)
	}
}

func TestStatsScreen_LoadError(t *testing.T) {
	s := loadedScreen(t, &mockScoreRepo{err: errors.New("disk on fire")}, nil)
	if !strings.Contains(s.View(100, 30), "disk on fire") {
		t.Error("expected the load error in the view")
	}
}

func TestNextFilter(t *testing.T) {
	tests := []struct {
		current typing.Language
		want    typing.Language
	}{
		{"", typing.English},
		{typing.English, typing.German},
		{typing.German, ""},
	}
	for _, tt := range tests {
		if got := nextFilter(typing.Languages, tt.current); got != tt.want {
			t.Errorf("nextFilter(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}
