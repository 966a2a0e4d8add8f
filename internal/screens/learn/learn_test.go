package learn

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rehearse/internal/learning"
	"github.com/abhisek/rehearse/internal/matcher"
	"github.com/abhisek/rehearse/internal/router"
	"github.com/abhisek/rehearse/internal/screen"
	"github.com/abhisek/rehearse/internal/store"
)

// mockSessionRepo implements store.SessionRepo for testing.
type mockSessionRepo struct {
	records []store.SessionRecord
}

func (m *mockSessionRepo) AppendSession(_ context.Context, rec store.SessionRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func (m *mockSessionRepo) RecentSessions(_ context.Context, _ store.QueryOpts) ([]store.SessionRecord, error) {
	return m.records, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(s *LearnScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func testSet() *learning.Set {
	return &learning.Set{
		Name: "Animals",
		Cards: []learning.Card{
			{Front: "Hund", Back: "dog"},
			{Front: "Katze", Back: "cat", Explanation: "die Katze"},
		},
	}
}

func newTestScreen(t *testing.T, set *learning.Set, spaced bool) (*LearnScreen, *mockSessionRepo) {
	t.Helper()
	repo := &mockSessionRepo{}
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s := New(set, Options{
		Matcher:  matcher.Default(),
		Spaced:   spaced,
		NumBoxes: 2,
		Sessions: repo,
		Rand:     rand.New(rand.NewPCG(7, 7)),
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
	if s.errMsg != "" {
		t.Fatalf("New: %s", s.errMsg)
	}
	return s, repo
}

func TestLearnScreen_Title(t *testing.T) {
	s, _ := newTestScreen(t, testSet(), false)
	if s.Title() != "Animals" {
		t.Errorf("Title = %q, want %q", s.Title(), "Animals")
	}
}

func TestLearnScreen_EmptySetShowsError(t *testing.T) {
	s := New(&learning.Set{Name: "Empty"}, Options{})
	if s.errMsg == "" {
		t.Fatal("expected an error for an empty set")
	}
	if view := s.View(80, 24); !strings.Contains(view, "Error") {
		t.Error("expected error view")
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command to go back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestLearnScreen_CorrectAnswer(t *testing.T) {
	s, _ := newTestScreen(t, testSet(), false)

	typeText(s, "dog")
	s.Update(specialKey(tea.KeyEnter))

	if _, ok := s.verdict.(matcher.AutoCorrect); !ok {
		t.Fatalf("verdict = %T, want AutoCorrect", s.verdict)
	}
	if !s.sess.Answered() {
		t.Error("session should wait for Advance after a settled answer")
	}
	if !strings.Contains(s.View(100, 30), "Correct!") {
		t.Error("feedback should be shown")
	}
}

func TestLearnScreen_EmptyInputIgnored(t *testing.T) {
	s, _ := newTestScreen(t, testSet(), false)
	s.Update(specialKey(tea.KeyEnter))
	if s.verdict != nil {
		t.Error("empty input should not be submitted")
	}
}

func TestLearnScreen_WrongAnswerShowsCorrection(t *testing.T) {
	s, _ := newTestScreen(t, testSet(), false)

	typeText(s, "xyz")
	s.Update(specialKey(tea.KeyEnter))

	if _, ok := s.verdict.(matcher.AutoIncorrect); !ok {
		t.Fatalf("verdict = %T, want AutoIncorrect", s.verdict)
	}
	if !strings.Contains(s.View(100, 30), "Correct answer: dog") {
		t.Error("view should reveal the correct answer")
	}
}

func TestLearnScreen_CloseAnswerAsksForDecision(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyPressMsg
		wantRight int
	}{
		{"accept with y", keyPress('y'), 1},
		{"reject with n", keyPress('n'), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &learning.Set{Name: "Greetings", Cards: []learning.Card{{Front: "Hallo", Back: "hello"}}}
			s, _ := newTestScreen(t, set, false)

			// "hallo" vs "hello" scores 0.88, inside the default decision band.
			typeText(s, "hallo")
			s.Update(specialKey(tea.KeyEnter))
			if !s.sess.Pending() {
				t.Fatalf("expected a pending decision, verdict %T", s.verdict)
			}

			s.Update(tt.key)
			if !s.sess.Answered() {
				t.Fatal("decision should settle the answer")
			}
			if got := s.sess.Stats().Correct; got != tt.wantRight {
				t.Errorf("Correct = %d, want %d", got, tt.wantRight)
			}
			if got := s.sess.Stats().UserOverrides; got != 1 {
				t.Errorf("UserOverrides = %d, want 1", got)
			}
		})
	}
}

func TestLearnScreen_DecisionButtons(t *testing.T) {
	set := &learning.Set{Name: "Greetings", Cards: []learning.Card{{Front: "Hallo", Back: "hello"}}}
	s, _ := newTestScreen(t, set, false)

	typeText(s, "hallo")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyRight))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("pressing a button should produce a decision")
	}
	s.Update(cmd())

	if !s.sess.Answered() {
		t.Fatal("button press should settle the answer")
	}
	if got := s.sess.Stats().Incorrect; got != 1 {
		t.Errorf("Incorrect = %d, want 1 after pressing Reject", got)
	}
}

func TestLearnScreen_SequentialFinishSavesSession(t *testing.T) {
	s, repo := newTestScreen(t, testSet(), false)

	typeText(s, "dog")
	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))
	if item, _ := s.sess.Current(); item.Answer != "cat" {
		t.Fatalf("second item = %q, want cat", item.Answer)
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared for the next item")
	}

	typeText(s, "cat")
	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after the last item")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Session Summary" {
		t.Errorf("replacement screen = %q", msg.Screen.Title())
	}

	if len(repo.records) != 1 {
		t.Fatalf("saved %d sessions, want 1", len(repo.records))
	}
	rec := repo.records[0]
	if rec.SetName != "Animals" || rec.Reviewed != 2 || rec.Correct != 2 || rec.Spaced {
		t.Errorf("saved record = %+v", rec)
	}
	if rec.Duration <= 0 {
		t.Errorf("Duration = %v, want positive", rec.Duration)
	}
}

func TestLearnScreen_SpacedRepeatsUntilMastered(t *testing.T) {
	s, repo := newTestScreen(t, testSet(), true)

	var cmd tea.Cmd
	asked := 0
	for !s.finished && asked < 10 {
		item, ok := s.sess.Current()
		if !ok {
			t.Fatal("no current item before finish")
		}
		typeText(s, item.Answer)
		s.Update(specialKey(tea.KeyEnter))
		_, cmd = s.Update(specialKey(tea.KeyEnter))
		asked++
	}

	// With two boxes one correct answer masters an item.
	if asked != 2 {
		t.Errorf("asked %d items, want 2", asked)
	}
	if cmd == nil {
		t.Fatal("expected the summary command")
	}
	if len(repo.records) != 1 || repo.records[0].Mastered != 2 || !repo.records[0].Spaced {
		t.Errorf("saved records = %+v", repo.records)
	}
	if !strings.Contains(s.Status(), "2/2 mastered") {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestLearnScreen_QuitConfirm(t *testing.T) {
	s, repo := newTestScreen(t, testSet(), false)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ls := scr.(*LearnScreen)
	if !ls.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = ls.Update(keyPress('n'))
	ls = scr.(*LearnScreen)
	if ls.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}

	ls.Update(specialKey(tea.KeyEscape))
	_, cmd := ls.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected the summary to replace the screen")
	}
	if len(repo.records) != 1 {
		t.Errorf("saved %d sessions, want 1", len(repo.records))
	}
	if ls.HandlesEscape() {
		t.Error("finished screen should no longer capture Esc")
	}
}

func TestLearnScreen_MultipleChoice(t *testing.T) {
	set := &learning.Set{
		Name: "Capitals",
		Questions: []learning.QuizQuestion{{
			Question:      "Capital of France?",
			CorrectAnswer: "Paris",
			Alternatives:  []string{"Berlin", "Madrid", "Rome"},
		}},
	}
	s, _ := newTestScreen(t, set, false)
	if s.choice == nil {
		t.Fatal("expected multiple-choice options")
	}
	if len(s.choice.Options) != 4 {
		t.Fatalf("options = %v, want 4", s.choice.Options)
	}

	idx := slices.Index(s.choice.Options, "Paris")
	s.Update(keyPress(rune('1' + idx)))

	if _, ok := s.verdict.(matcher.AutoCorrect); !ok {
		t.Fatalf("verdict = %T, want AutoCorrect", s.verdict)
	}
	if s.sess.Stats().Correct != 1 {
		t.Errorf("Correct = %d, want 1", s.sess.Stats().Correct)
	}
}

func TestLearnScreen_MultipleChoiceWrongSimilarPick(t *testing.T) {
	set := &learning.Set{
		Name: "History",
		Questions: []learning.QuizQuestion{{
			Question:      "End of WWII?",
			CorrectAnswer: "1945",
			Alternatives:  []string{"1944", "1918"},
		}},
	}
	s, _ := newTestScreen(t, set, false)
	if s.choice == nil {
		t.Fatal("expected multiple-choice options")
	}

	idx := slices.Index(s.choice.Options, "1944")
	s.Update(keyPress(rune('1' + idx)))

	if _, ok := s.verdict.(matcher.AutoIncorrect); !ok {
		t.Fatalf("verdict = %T, want AutoIncorrect for a near-miss option", s.verdict)
	}
	if s.sess.Pending() {
		t.Fatal("a picked option must not ask for a decision")
	}
	if strings.Contains(s.View(100, 30), "Count this answer as correct?") {
		t.Error("view should not offer to accept a wrong option")
	}

	s.Update(keyPress('y'))
	if got := s.sess.Stats(); got.Correct != 0 || got.Incorrect != 1 || got.UserOverrides != 0 {
		t.Errorf("Stats() = %+v, want one incorrect answer", got)
	}
}

func TestLearnScreen_ShufflesWithSeededSource(t *testing.T) {
	set := &learning.Set{
		Name: "Capitals",
		Questions: []learning.QuizQuestion{{
			Question:      "Capital of France?",
			CorrectAnswer: "Paris",
			Alternatives:  []string{"Berlin", "Madrid", "Rome"},
		}},
	}
	order := func() []string {
		s := New(set, Options{Matcher: matcher.Default(), Rand: rand.New(rand.NewPCG(5, 5))})
		return s.choice.Options
	}
	if a, b := order(), order(); !slices.Equal(a, b) {
		t.Errorf("option order differs for the same seed: %v vs %v", a, b)
	}
	if s := New(set, Options{Matcher: matcher.Default()}); s.opts.Rand == nil {
		t.Error("New should default the random source")
	}
}

func TestLearnScreen_KeyHints(t *testing.T) {
	s, _ := newTestScreen(t, testSet(), false)
	if hints := s.KeyHints(); len(hints) != 2 || hints[0].Key != "Enter" {
		t.Errorf("asking hints = %+v", hints)
	}
	s.confirmQuit = true
	if hints := s.KeyHints(); hints[0].Key != "Y" {
		t.Errorf("quit hints = %+v", hints)
	}
}
