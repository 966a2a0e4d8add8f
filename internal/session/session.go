// Package session runs a review session over a learning set: it checks
// answers with a matcher, moves items through the Leitner boxes and keeps
// the tally.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/rehearse/internal/learning"
	"github.com/abhisek/rehearse/internal/logging"
	"github.com/abhisek/rehearse/internal/matcher"
	"github.com/abhisek/rehearse/internal/spacedrep"
)

// DefaultNumBoxes is the number of Leitner boxes used when Options leaves it
// unset.
const DefaultNumBoxes = 5

var (
	// ErrEmptySet is returned when a session is created for a set without items.
	ErrEmptySet = errors.New("learning set has no items")

	// ErrNoPendingDecision is returned by Resolve when no answer awaits the
	// learner's judgement.
	ErrNoPendingDecision = errors.New("no answer awaiting a decision")
)

// Options configures a Session.
type Options struct {
	// NumBoxes is the number of Leitner boxes. Zero means DefaultNumBoxes.
	NumBoxes int

	// Spaced repeats items until every one is mastered. When false each item
	// is asked once, in set order.
	Spaced bool

	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// phase is where the session is within the current item.
type phase int

const (
	phaseAsking   phase = iota // waiting for an answer
	phaseDeciding              // answer needs the learner's judgement
	phaseAnswered              // feedback shown, waiting for Advance
)

// Session drives one pass over a learning set. It is not safe for
// concurrent use.
type Session struct {
	id      string
	set     *learning.Set
	items   []learning.Item
	matcher *matcher.Matcher
	sched   *spacedrep.Scheduler
	spaced  bool
	logger  *slog.Logger

	stats   Stats
	current int // id of the item being asked
	cursor  int // sequential mode position
	phase   phase
}

// New creates a session over set. A nil matcher uses matcher.Default.
func New(set *learning.Set, m *matcher.Matcher, opts Options) (*Session, error) {
	if set == nil || set.IsEmpty() {
		return nil, fmt.Errorf("new session: %w", ErrEmptySet)
	}
	if m == nil {
		m = matcher.Default()
	}
	if opts.NumBoxes == 0 {
		opts.NumBoxes = DefaultNumBoxes
	}
	logger := logging.OrDiscard(opts.Logger)

	items := set.Items()
	s := &Session{
		id:      uuid.New().String(),
		set:     set,
		items:   items,
		matcher: m,
		sched:   spacedrep.NewScheduler(opts.NumBoxes, len(items)),
		spaced:  opts.Spaced,
	}
	s.logger = logger.With("session_id", s.id)
	s.Restart()
	return s, nil
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Set returns the learning set under review.
func (s *Session) Set() *learning.Set { return s.set }

// Spaced reports whether the session repeats items until mastered.
func (s *Session) Spaced() bool { return s.spaced }

// Scheduler exposes the box scheduler for progress display.
func (s *Session) Scheduler() *spacedrep.Scheduler { return s.sched }

// Stats returns a copy of the answer tally.
func (s *Session) Stats() Stats { return s.stats }

// Done reports whether there is nothing left to ask.
func (s *Session) Done() bool {
	if s.spaced {
		return s.sched.AllMastered()
	}
	return s.cursor >= len(s.items)
}

// Current returns the item being asked. It reports false once the session
// is done and the last answer has been acknowledged.
func (s *Session) Current() (learning.Item, bool) {
	if s.phase == phaseAsking && s.Done() {
		return learning.Item{}, false
	}
	return s.items[s.current], true
}

// Pending reports whether the last answer awaits the learner's judgement.
func (s *Session) Pending() bool { return s.phase == phaseDeciding }

// Answered reports whether the current item has been settled and the
// session is waiting for Advance.
func (s *Session) Answered() bool { return s.phase == phaseAnswered }

// Submit checks input against the current item. Automatic verdicts are
// recorded immediately; NeedsUserDecision leaves the item pending until
// Resolve is called. Submit returns nil when no answer is expected.
func (s *Session) Submit(input string) matcher.Verdict {
	if s.phase != phaseAsking || s.Done() {
		return nil
	}
	item := s.items[s.current]
	return s.settle(item, s.matcher.CheckAnswer(input, item.Answer))
}

// SubmitChoice settles the current item with a picked multiple-choice
// option. Only the exact answer counts, so the verdict is never
// NeedsUserDecision. It returns nil when no answer is expected.
func (s *Session) SubmitChoice(option string) matcher.Verdict {
	if s.phase != phaseAsking || s.Done() {
		return nil
	}
	item := s.items[s.current]
	if option == item.Answer {
		return s.settle(item, matcher.AutoCorrect{Score: 1.0})
	}
	return s.settle(item, matcher.AutoIncorrect{Score: s.matcher.Similarity(option, item.Answer)})
}

func (s *Session) settle(item learning.Item, v matcher.Verdict) matcher.Verdict {
	switch v.(type) {
	case matcher.AutoCorrect:
		s.stats.RecordCorrect()
		s.sched.AnswerCorrect(item.ID)
		s.phase = phaseAnswered
	case matcher.AutoIncorrect:
		s.stats.RecordIncorrect()
		s.sched.AnswerIncorrect(item.ID)
		s.phase = phaseAnswered
	case matcher.NeedsUserDecision:
		s.phase = phaseDeciding
	}

	s.logger.Debug("answer checked",
		"item", item.ID,
		"score", v.MatchScore(),
		"verdict", fmt.Sprintf("%T", v),
	)
	return v
}

// Resolve settles a pending answer with the learner's judgement.
func (s *Session) Resolve(accepted bool) error {
	if s.phase != phaseDeciding {
		return ErrNoPendingDecision
	}

	s.stats.RecordOverride(accepted)
	if accepted {
		s.sched.AnswerCorrect(s.current)
	} else {
		s.sched.AnswerIncorrect(s.current)
	}
	s.phase = phaseAnswered

	s.logger.Debug("answer resolved", "item", s.current, "accepted", accepted)
	return nil
}

// Advance moves on to the next item once the current one is settled. It is
// a no-op while an answer is expected or pending.
func (s *Session) Advance() {
	if s.phase != phaseAnswered {
		return
	}
	s.phase = phaseAsking
	if !s.spaced {
		s.cursor++
	}
	s.pick()
}

func (s *Session) pick() {
	if s.spaced {
		if id, ok := s.sched.NextItem(); ok {
			s.current = id
		}
		return
	}
	if s.cursor < len(s.items) {
		s.current = s.cursor
	}
}

// Restart puts every item back into the first box and clears the tally.
func (s *Session) Restart() {
	s.sched.Reset()
	s.stats = Stats{}
	s.cursor = 0
	s.phase = phaseAsking
	s.pick()
	s.logger.Debug("session started",
		"set", s.set.Name,
		"items", len(s.items),
		"boxes", s.sched.NumBoxes(),
		"spaced", s.spaced,
	)
}
