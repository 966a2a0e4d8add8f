// Package stats shows stored high scores and learning sessions.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/rehearse/internal/report"
	"github.com/abhisek/rehearse/internal/screen"
	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/typing"
	"github.com/abhisek/rehearse/internal/ui/layout"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

const (
	topScores      = 10
	recentSessions = 10
)

type tab int

const (
	tabScores tab = iota
	tabSessions
)

type statsLoadedMsg struct {
	Scores   []store.HighScore
	Stats    store.HighScoreStats
	Sessions []store.SessionRecord
	Err      error
}

// StatsScreen shows the best typing results and recent learning sessions.
type StatsScreen struct {
	scores     store.HighScoreRepo
	sessions   store.SessionRepo
	language   typing.Language   // empty = all
	difficulty typing.Difficulty // empty = all

	tab    tab
	data   statsLoadedMsg
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen. Either repository may be nil.
func New(scores store.HighScoreRepo, sessions store.SessionRepo) *StatsScreen {
	return &StatsScreen{scores: scores, sessions: sessions}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.load()
}

// load queries scores, aggregates and sessions concurrently.
func (s *StatsScreen) load() tea.Cmd {
	scores, sessions := s.scores, s.sessions
	lang, diff := string(s.language), string(s.difficulty)
	return func() tea.Msg {
		var msg statsLoadedMsg
		g, ctx := errgroup.WithContext(context.Background())

		if scores != nil {
			g.Go(func() error {
				list, err := scores.Filtered(ctx, lang, diff)
				if err != nil {
					return fmt.Errorf("load high scores: %w", err)
				}
				msg.Scores = list[:min(len(list), topScores)]
				return nil
			})
			g.Go(func() error {
				var err error
				if msg.Stats, err = scores.Statistics(ctx); err != nil {
					return fmt.Errorf("load statistics: %w", err)
				}
				return nil
			})
		}
		if sessions != nil {
			g.Go(func() error {
				list, err := sessions.RecentSessions(ctx, store.QueryOpts{Limit: recentSessions})
				if err != nil {
					return fmt.Errorf("load sessions: %w", err)
				}
				msg.Sessions = list
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return statsLoadedMsg{Err: err}
		}
		return msg
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch view"}}
	if s.tab == tabScores {
		hints = append(hints,
			layout.KeyHint{Key: "L", Description: "Language"},
			layout.KeyHint{Key: "D", Description: "Difficulty"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.data = msg
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if s.tab == tabScores {
				s.tab = tabSessions
			} else {
				s.tab = tabScores
			}
		case "l", "L":
			s.language = nextFilter(typing.Languages, s.language)
			return s, s.load()
		case "d", "D":
			s.difficulty = nextFilter(typing.Difficulties, s.difficulty)
			return s, s.load()
		}
	}
	return s, nil
}

// nextFilter steps through "all" followed by every value.
func nextFilter[T comparable](values []T, current T) T {
	var zero T
	if current == zero {
		return values[0]
	}
	for i, v := range values {
		if v == current && i+1 < len(values) {
			return values[i+1]
		}
	}
	return zero
}

func (s *StatsScreen) View(width, height int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.errMsg != "" {
		return layout.Center(width, lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return layout.Center(width, dim, "\n\n  Loading statistics...")
	}

	var b strings.Builder
	b.WriteString(s.renderTabs(width))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width, 80))
	b.WriteString("\n\n")

	if s.tab == tabSessions {
		if len(s.data.Sessions) == 0 {
			b.WriteString(layout.Center(width, dim.Italic(true), "No sessions yet. Pick a learning set to start!"))
			return b.String()
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			report.SessionTable(s.data.Sessions).String()))
		return b.String()
	}

	for _, line := range report.StatisticsLines(s.data.Stats) {
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Text), line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(layout.Center(width, dim, fmt.Sprintf("Language: %s    Difficulty: %s",
		filterName(s.language), filterName(s.difficulty))))
	b.WriteString("\n\n")

	if len(s.data.Scores) == 0 {
		b.WriteString(layout.Center(width, dim.Italic(true), "No high scores for this filter."))
		return b.String()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		report.HighScoreTable(s.data.Scores).String()))
	return b.String()
}

func (s *StatsScreen) renderTabs(width int) string {
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim)

	scores, sessions := inactive, inactive
	if s.tab == tabScores {
		scores = active
	} else {
		sessions = active
	}
	line := scores.Render("High Scores") + "     " + sessions.Render("Learning Sessions")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func filterName(v fmt.Stringer) string {
	if v.String() == "" {
		return "All"
	}
	return v.String()
}
