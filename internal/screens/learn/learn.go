// Package learn implements the flashcard review screen.
package learn

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rehearse/internal/learning"
	"github.com/abhisek/rehearse/internal/logging"
	"github.com/abhisek/rehearse/internal/matcher"
	"github.com/abhisek/rehearse/internal/router"
	"github.com/abhisek/rehearse/internal/screen"
	"github.com/abhisek/rehearse/internal/screens/summary"
	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/layout"
)

// Options configures a learn screen.
type Options struct {
	Matcher  *matcher.Matcher
	Spaced   bool
	NumBoxes int
	Sessions store.SessionRepo // nil disables history
	Logger   *slog.Logger
	Rand     *rand.Rand       // shuffles multiple-choice options; nil seeds a new source
	Now      func() time.Time // nil uses time.Now
}

// decisionMsg carries the learner's judgement of a close answer.
type decisionMsg struct {
	accepted bool
}

// LearnScreen asks the items of a learning set one at a time.
type LearnScreen struct {
	opts    Options
	logger  *slog.Logger
	sess    *session.Session
	started time.Time

	input    components.TextInput
	choice   *components.MultiChoice
	decision components.ButtonRow
	verdict  matcher.Verdict

	confirmQuit bool
	finished    bool
	errMsg      string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.StatusProvider = (*LearnScreen)(nil)
var _ screen.EscapeHandler = (*LearnScreen)(nil)

// New creates a learn screen for set. A set that cannot be reviewed shows
// an error instead.
func New(set *learning.Set, opts Options) *LearnScreen {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &LearnScreen{
		opts:   opts,
		logger: logging.OrDiscard(opts.Logger),
		input:  components.NewTextInput("Type your answer...", 120),
		decision: components.NewButtonRow(
			components.NewButton("Accept", true, decide(true)),
			components.NewButton("Reject", false, decide(false)),
		),
	}

	sess, err := session.New(set, opts.Matcher, session.Options{
		NumBoxes: opts.NumBoxes,
		Spaced:   opts.Spaced,
		Logger:   opts.Logger,
	})
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.sess = sess
	s.started = opts.Now()
	s.prepare()
	return s
}

func decide(accepted bool) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return decisionMsg{accepted: accepted} }
	}
}

func (s *LearnScreen) Init() tea.Cmd {
	if s.sess != nil && s.sess.Done() {
		return s.finish()
	}
	return s.input.Init()
}

func (s *LearnScreen) Title() string {
	if s.sess == nil {
		return "Learn"
	}
	return s.sess.Set().Name
}

// Status shows how far the session has come.
func (s *LearnScreen) Status() string {
	if s.sess == nil {
		return ""
	}
	sum := s.sess.Scheduler().Summary()
	if s.sess.Spaced() {
		return fmt.Sprintf("★ %d/%d mastered", sum.MasteredItems, sum.TotalItems)
	}
	st := s.sess.Stats()
	return fmt.Sprintf("%d/%d answered", st.TotalReviewed, sum.TotalItems)
}

// HandlesEscape keeps Esc for the quit confirmation while a session runs.
func (s *LearnScreen) HandlesEscape() bool {
	return s.sess != nil && !s.finished
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.sess == nil:
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.sess.Pending():
		return []layout.KeyHint{
			{Key: "Y", Description: "Accept"},
			{Key: "N", Description: "Reject"},
			{Key: "←→", Description: "Choose"},
		}
	case s.sess.Answered():
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	case s.choice != nil:
		return []layout.KeyHint{
			{Key: "1-9", Description: "Pick"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case decisionMsg:
		return s.resolve(msg.accepted)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.sess != nil && !s.sess.Answered() && !s.sess.Pending() && s.choice == nil {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.sess == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.finished {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.finish()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	switch {
	case s.sess.Pending():
		switch key {
		case "y", "Y":
			return s.resolve(true)
		case "n", "N":
			return s.resolve(false)
		}
		var cmd tea.Cmd
		s.decision, cmd = s.decision.Update(msg)
		return s, cmd

	case s.sess.Answered():
		if key == "enter" || key == "space" {
			return s.next()
		}
		return s, nil

	case s.choice != nil:
		var cmd tea.Cmd
		*s.choice, cmd = s.choice.Update(msg)
		if option, ok := s.choice.Chosen(); ok {
			s.record(s.sess.SubmitChoice(option))
		}
		return s, cmd
	}

	if key == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		s.submit(s.input.Value())
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// prepare resets the answer widgets for the current item.
func (s *LearnScreen) prepare() {
	s.verdict = nil
	s.input.Reset()
	s.choice = nil
	s.decision = components.NewButtonRow(s.decision.Buttons...)

	item, ok := s.sess.Current()
	if !ok || len(item.Options) == 0 {
		return
	}

	options := item.ShuffledOptions(s.opts.Rand)
	mc := components.NewMultiChoice(options, slices.Index(options, item.Answer))
	s.choice = &mc
}

func (s *LearnScreen) submit(answer string) {
	s.record(s.sess.Submit(answer))
}

// record shows the verdict of the current answer.
func (s *LearnScreen) record(v matcher.Verdict) {
	if v == nil {
		return
	}
	s.verdict = v
	if accepted, decided := matcher.Accepted(v); decided {
		s.input.Submit(accepted)
	}
}

func (s *LearnScreen) resolve(accepted bool) (screen.Screen, tea.Cmd) {
	if s.sess == nil {
		return s, nil
	}
	if err := s.sess.Resolve(accepted); err != nil {
		return s, nil
	}
	s.input.Submit(accepted)
	return s, nil
}

func (s *LearnScreen) next() (screen.Screen, tea.Cmd) {
	s.sess.Advance()
	if s.sess.Done() {
		return s, s.finish()
	}
	s.prepare()
	return s, nil
}

// finish records the session and replaces this screen with its summary.
func (s *LearnScreen) finish() tea.Cmd {
	if s.finished {
		return nil
	}
	s.finished = true

	now := s.opts.Now()
	sum := s.sess.Summary(now.Sub(s.started))

	if s.opts.Sessions != nil {
		rec := store.NewSessionRecord(sum, s.sess.Spaced(), now)
		if err := s.opts.Sessions.AppendSession(context.Background(), rec); err != nil {
			s.logger.Error("failed to save session", "session_id", sum.SessionID, "error", err)
		}
	}
	s.logger.Info("session finished",
		"session_id", sum.SessionID,
		"set", sum.SetName,
		"reviewed", sum.Stats.TotalReviewed,
		"accuracy", sum.Accuracy,
	)

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
