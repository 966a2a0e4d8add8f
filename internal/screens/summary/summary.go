package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/router"
	"github.com/abhisek/rehearse/internal/screen"
	"github.com/abhisek/rehearse/internal/session"
	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/layout"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		"Session complete!"))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Text), sum.SetName))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	st := sum.Stats
	statsLine := fmt.Sprintf("Reviewed: %d        Correct: %d        Incorrect: %d        Accuracy: %.0f%%",
		st.TotalReviewed, st.Correct, st.Incorrect, sum.Accuracy)
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n")
	if st.UserOverrides > 0 {
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Close answers judged by you: %d", st.UserOverrides)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Boxes"))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width, 60))
	b.WriteString("\n\n")

	m := sum.Mastery
	barWidth := min(width-8, 60)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar("Mastery", m.MasteryPercentage()/100, true, barWidth).View()))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("%d of %d items mastered, %d in progress", m.MasteredItems, m.TotalItems, m.InProgressItems)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewBoxChart(m.BoxCounts, barWidth).View()))

	return b.String()
}
