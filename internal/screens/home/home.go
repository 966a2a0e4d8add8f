// Package home implements the start screen and wires the other screens to
// the application's services.
package home

import (
	"context"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rehearse/internal/config"
	"github.com/abhisek/rehearse/internal/learning"
	"github.com/abhisek/rehearse/internal/router"
	"github.com/abhisek/rehearse/internal/screen"
	"github.com/abhisek/rehearse/internal/screens/learn"
	"github.com/abhisek/rehearse/internal/screens/picker"
	"github.com/abhisek/rehearse/internal/screens/settings"
	"github.com/abhisek/rehearse/internal/screens/stats"
	"github.com/abhisek/rehearse/internal/screens/typingtest"
	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/typing"
	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/layout"
)

// Services are the dependencies shared by the screens reachable from home.
// Scores and Sessions may be nil, in which case nothing is recorded.
type Services struct {
	Config     *config.Config
	ConfigPath string
	Scores     store.HighScoreRepo
	Sessions   store.SessionRepo
	Words      *typing.Loader
	Logger     *slog.Logger
}

// LearnOptions builds the learn-screen options from the configuration.
func (s Services) LearnOptions() learn.Options {
	return learn.Options{
		Matcher:  s.Config.Matcher(),
		Spaced:   s.Config.Learning.SpacedRepetition,
		NumBoxes: s.Config.Learning.LeitnerBoxes,
		Sessions: s.Sessions,
		Logger:   s.Logger,
	}
}

// TypingOptions builds the typing-test options from the configuration.
func (s Services) TypingOptions() typingtest.Options {
	return typingtest.Options{
		Words:         s.Words,
		Scores:        s.Scores,
		Language:      s.Config.Language(),
		Difficulty:    s.Config.Difficulty(),
		PlayerName:    s.Config.Defaults.PlayerName,
		MinAccuracy:   s.Config.Defaults.MinAccuracyForHighscore,
		MaxHighscores: s.Config.Defaults.MaxHighscores,
		Logger:        s.Logger,
	}
}

type homeLoadedMsg struct {
	sets        int
	bestWPM     float64
	sessions    int
	allMastered bool
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc           Services
	menu          components.Menu
	menuLabels    []string
	sets          int
	bestWPM       float64
	sessions      int
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc Services) *HomeScreen {
	if svc.Config == nil {
		svc.Config = config.Default()
	}

	h := &HomeScreen{
		svc:        svc,
		menuLabels: []string{"LEARN", "TYPING TEST", "STATISTICS", "SETTINGS", "QUIT"},
	}

	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			return push(picker.New(h.svc.Config.Paths.LearningSetsDir, h.svc.LearnOptions()))
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return push(typingtest.New(h.svc.TypingOptions()))
		}},
		{Label: h.menuLabels[2], Action: func() tea.Cmd {
			return push(stats.New(h.svc.Scores, h.svc.Sessions))
		}},
		{Label: h.menuLabels[3], Action: func() tea.Cmd {
			return push(settings.New(h.svc.Config, h.svc.ConfigPath))
		}},
		{Label: h.menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// load counts learning sets and reads the dashboard numbers from the store.
func (h *HomeScreen) load() tea.Cmd {
	svc := h.svc
	return func() tea.Msg {
		ctx := context.Background()
		var msg homeLoadedMsg

		if files, err := learning.ListSets(svc.Config.Paths.LearningSetsDir); err == nil {
			msg.sets = len(files)
		}
		if svc.Scores != nil {
			if st, err := svc.Scores.Statistics(ctx); err == nil {
				msg.bestWPM = st.BestWPM
			}
		}
		if svc.Sessions != nil {
			if recs, err := svc.Sessions.RecentSessions(ctx, store.QueryOpts{}); err == nil {
				msg.sessions = len(recs)
				if len(recs) > 0 {
					last := recs[0]
					msg.allMastered = last.Total > 0 && last.Mastered == last.Total
				}
			}
		}
		return msg
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(homeLoadedMsg); ok {
		h.sets, h.bestWPM, h.sessions = m.sets, m.bestWPM, m.sessions
		switch {
		case m.sets == 0:
			h.mascotVariant = MascotAlert
		case m.allMastered:
			h.mascotVariant = MascotCelebrating
		default:
			h.mascotVariant = MascotIdle
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100
	tiny := termHeight < 28

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, RenderMascot(h.mascotVariant))
	}
	sections = append(sections, renderStatsBar(h.sets, h.bestWPM, h.sessions, cw, compact))
	if tiny {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}
