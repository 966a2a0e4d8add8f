// Package settings lets the user change and save the configuration
// defaults.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/config"
	"github.com/abhisek/rehearse/internal/screen"
	"github.com/abhisek/rehearse/internal/typing"
	"github.com/abhisek/rehearse/internal/ui/layout"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

type field int

const (
	fieldLanguage field = iota
	fieldDifficulty
	fieldSpaced
	fieldBoxes
	fieldCount
)

// SettingsScreen edits cfg in place. Changes apply to screens opened
// afterwards; S writes them to path.
type SettingsScreen struct {
	cfg      *config.Config
	path     string
	selected field
	message  string
	failed   bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a settings screen for cfg, saved to path.
func New(cfg *config.Config, path string) *SettingsScreen {
	return &SettingsScreen{cfg: cfg, path: path}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Change"},
		{Key: "S", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < fieldCount-1 {
			s.selected++
		}
	case "right", "l", "enter", "space":
		s.change(1)
	case "left", "h":
		s.change(-1)
	case "s", "S":
		s.save()
	}
	return s, nil
}

func (s *SettingsScreen) change(step int) {
	s.message = ""
	switch s.selected {
	case fieldLanguage:
		s.cfg.Defaults.Language = step1(typing.Languages, s.cfg.Language(), step).Code()
	case fieldDifficulty:
		s.cfg.Defaults.Difficulty = string(step1(typing.Difficulties, s.cfg.Difficulty(), step))
	case fieldSpaced:
		s.cfg.Learning.SpacedRepetition = !s.cfg.Learning.SpacedRepetition
	case fieldBoxes:
		s.cfg.Learning.LeitnerBoxes = min(max(s.cfg.Learning.LeitnerBoxes+step, 2), 10)
	}
}

func (s *SettingsScreen) save() {
	if err := s.cfg.Validate(); err != nil {
		s.message, s.failed = err.Error(), true
		return
	}
	if err := s.cfg.Save(s.path); err != nil {
		s.message, s.failed = err.Error(), true
		return
	}
	s.message, s.failed = "Saved to "+s.path, false
}

// step1 moves one position through values, wrapping around.
func step1[T comparable](values []T, current T, step int) T {
	for i, v := range values {
		if v == current {
			return values[(i+step+len(values))%len(values)]
		}
	}
	return values[0]
}

func (s *SettingsScreen) View(width, height int) string {
	rows := []struct {
		label string
		value string
	}{
		{"Typing language", s.cfg.Language().Name()},
		{"Typing difficulty", s.cfg.Difficulty().Description()},
		{"Spaced repetition", onOff(s.cfg.Learning.SpacedRepetition)},
		{"Leitner boxes", fmt.Sprintf("%d", s.cfg.Learning.LeitnerBoxes)},
	}

	label := lipgloss.NewStyle().Width(22)
	var lines []string
	for i, r := range rows {
		prefix, style := "  ", lipgloss.NewStyle().Foreground(theme.Text)
		if field(i) == s.selected {
			prefix, style = "▸ ", theme.Selected
		}
		lines = append(lines, style.Render(prefix+label.Render(r.label)+"‹ "+r.value+" ›"))
	}

	var b strings.Builder
	b.WriteString(layout.Center(width, theme.Title, "Settings"))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width, 60))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")))
	b.WriteString("\n\n")

	if s.message != "" {
		color := theme.Success
		if s.failed {
			color = theme.Error
		}
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(color), s.message))
	}
	return b.String()
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}
