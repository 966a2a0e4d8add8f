// Package typingtest implements the timed typing test screen.
package typingtest

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rehearse/internal/logging"
	"github.com/abhisek/rehearse/internal/screen"
	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/typing"
	"github.com/abhisek/rehearse/internal/ui/layout"
)

// Options configures a typing test.
type Options struct {
	Words         *typing.Loader
	Scores        store.HighScoreRepo // nil disables saving
	Language      typing.Language
	Difficulty    typing.Difficulty
	PlayerName    string
	MinAccuracy   float64 // percent required for a high score
	MaxHighscores int
	Logger        *slog.Logger
	Rand          *rand.Rand       // nil seeds a new source
	Now           func() time.Time // nil uses time.Now
}

type phase int

const (
	phaseReady phase = iota
	phaseTyping
	phaseResult
)

// TypingScreen runs one typing test after another.
type TypingScreen struct {
	opts   Options
	logger *slog.Logger

	target     string
	runes      []rune
	typed      []rune
	errorCount int
	started    time.Time
	phase      phase

	result  typing.Result
	saved   bool
	saveErr string
	errMsg  string
}

var _ screen.Screen = (*TypingScreen)(nil)
var _ screen.KeyHintProvider = (*TypingScreen)(nil)
var _ screen.StatusProvider = (*TypingScreen)(nil)

// New creates a typing test and generates its first text.
func New(opts Options) *TypingScreen {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Language == "" {
		opts.Language = typing.English
	}
	if opts.Difficulty == "" {
		opts.Difficulty = typing.Medium
	}
	t := &TypingScreen{
		opts:   opts,
		logger: logging.OrDiscard(opts.Logger),
	}
	t.reset()
	return t
}

// reset generates a fresh text for the current language and difficulty.
func (t *TypingScreen) reset() {
	t.typed = t.typed[:0]
	t.errorCount = 0
	t.phase = phaseReady
	t.result = typing.Result{}
	t.saved = false
	t.saveErr = ""
	t.errMsg = ""

	if t.opts.Words == nil {
		t.errMsg = "no word list configured"
		return
	}
	text, err := t.opts.Words.GenerateText(t.opts.Language, t.opts.Difficulty, t.opts.Rand)
	if err != nil {
		t.errMsg = err.Error()
		t.target = ""
		t.runes = nil
		return
	}
	t.target = text
	t.runes = []rune(text)
}

func (t *TypingScreen) Init() tea.Cmd {
	return nil
}

func (t *TypingScreen) Title() string {
	return "Typing Test"
}

// Status names the active language and difficulty.
func (t *TypingScreen) Status() string {
	return t.opts.Language.Name() + " · " + t.opts.Difficulty.String()
}

func (t *TypingScreen) KeyHints() []layout.KeyHint {
	switch t.phase {
	case phaseResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New test"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseTyping:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Restart"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "type", Description: "Start"},
		{Key: "Ctrl+L", Description: "Language"},
		{Key: "Ctrl+D", Description: "Difficulty"},
		{Key: "Tab", Description: "New text"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TypingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return t, nil
	}

	switch key := kmsg.String(); {
	case t.phase == phaseResult:
		if key == "enter" {
			t.reset()
		}
		return t, nil

	case key == "tab":
		t.reset()
		return t, nil

	case key == "ctrl+l" && t.phase == phaseReady:
		t.opts.Language = cycle(typing.Languages, t.opts.Language)
		t.reset()
		return t, nil

	case key == "ctrl+d" && t.phase == phaseReady:
		t.opts.Difficulty = cycle(typing.Difficulties, t.opts.Difficulty)
		t.reset()
		return t, nil

	case key == "backspace":
		if len(t.typed) > 0 {
			t.typed = t.typed[:len(t.typed)-1]
		}
		return t, nil
	}

	if t.errMsg != "" || kmsg.Text == "" {
		return t, nil
	}
	for _, r := range kmsg.Text {
		t.typeRune(r)
		if t.phase == phaseResult {
			break
		}
	}
	return t, nil
}

// typeRune appends r and counts it as an error when it does not match the
// target at the same position.
func (t *TypingScreen) typeRune(r rune) {
	if t.phase == phaseReady {
		t.phase = phaseTyping
		t.started = t.opts.Now()
	}

	pos := len(t.typed)
	t.typed = append(t.typed, r)
	if pos >= len(t.runes) || t.runes[pos] != r {
		t.errorCount++
	}

	if len(t.typed) >= len(t.runes) {
		t.complete()
	}
}

func (t *TypingScreen) complete() {
	t.phase = phaseResult
	d := t.opts.Now().Sub(t.started)
	t.result = typing.Calculate(t.target, string(t.typed), d, t.errorCount)

	t.logger.Info("typing test finished",
		"language", t.opts.Language.Code(),
		"difficulty", string(t.opts.Difficulty),
		"wpm", t.result.WPM,
		"accuracy", t.result.Accuracy,
	)

	if t.opts.Scores == nil || !t.result.QualifiesForHighscore(t.opts.MinAccuracy) {
		return
	}
	hs := store.NewHighScore(t.opts.PlayerName, t.result, t.opts.Language, t.opts.Difficulty, t.opts.Now())
	if err := t.opts.Scores.Add(context.Background(), hs, t.opts.MaxHighscores); err != nil {
		t.saveErr = err.Error()
		t.logger.Error("failed to save high score", "error", err)
		return
	}
	t.saved = true
}

func cycle[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
