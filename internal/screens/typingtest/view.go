package typingtest

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/typing"
	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/layout"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

func (t *TypingScreen) View(width, height int) string {
	if t.errMsg != "" {
		return layout.Center(width, lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("\n\n\n  Error: %s\n\n  Press Esc to go back.", t.errMsg))
	}
	if t.phase == phaseResult {
		return t.renderResult(width)
	}
	return t.renderTest(width)
}

func (t *TypingScreen) renderTest(width int) string {
	var b strings.Builder
	typed := string(t.typed)

	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
		t.opts.Difficulty.Description()))
	b.WriteString("\n\n")

	textWidth := min(width-8, 70)
	text := lipgloss.NewStyle().Width(textWidth).Render(t.renderTarget())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar("Progress", typing.Progress(t.target, typed)/100, true, barWidth).View()))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Accuracy: %.1f%%    Errors: %d",
		typing.RealtimeAccuracy(t.target, typed), t.errorCount)
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Text), stats))

	if t.phase == phaseReady {
		b.WriteString("\n\n")
		b.WriteString(layout.Center(width, theme.Hint, "Start typing to begin the timer."))
	}
	return b.String()
}

// renderTarget colors typed runes by correctness and underlines the cursor.
func (t *TypingScreen) renderTarget() string {
	correct := lipgloss.NewStyle().Foreground(theme.Success)
	wrong := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Error)
	cursor := lipgloss.NewStyle().Foreground(theme.Text).Underline(true)
	pending := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for i, r := range t.runes {
		ch := string(r)
		switch {
		case i < len(t.typed) && t.typed[i] == r:
			b.WriteString(correct.Render(ch))
		case i < len(t.typed):
			b.WriteString(wrong.Render(ch))
		case i == len(t.typed):
			b.WriteString(cursor.Render(ch))
		default:
			b.WriteString(pending.Render(ch))
		}
	}
	return b.String()
}

func (t *TypingScreen) renderResult(width int) string {
	r := t.result
	var b strings.Builder

	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Test complete!"))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Highlight), r.Rating()))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width, 50))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"WPM", fmt.Sprintf("%.1f", r.WPM)},
		{"CPM", fmt.Sprintf("%.1f", r.CPM)},
		{"Accuracy", fmt.Sprintf("%.1f%%", r.Accuracy)},
		{"Time", r.DurationString()},
		{"Errors", fmt.Sprintf("%d", r.ErrorCount)},
		{"Characters", fmt.Sprintf("%d/%d", r.CorrectChars, r.TotalChars)},
	}
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(14)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = label.Render(row[0]) + value.Render(row[1])
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")))
	b.WriteString("\n\n")

	switch {
	case t.saved:
		b.WriteString(layout.Center(width, theme.Correct, "High score saved!"))
	case t.saveErr != "":
		b.WriteString(layout.Center(width, theme.Incorrect, "Could not save high score: "+t.saveErr))
	case t.opts.Scores != nil:
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Reach %.0f%% accuracy to enter the high scores.", t.opts.MinAccuracy)))
	}
	return b.String()
}
