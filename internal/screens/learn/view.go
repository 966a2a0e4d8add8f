package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/matcher"
	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/layout"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

func (s *LearnScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.sess == nil || s.finished {
		return ""
	}
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	return s.renderItem(width)
}

func (s *LearnScreen) renderItem(width int) string {
	item, ok := s.sess.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), item.Prompt))
	b.WriteString("\n\n")

	if s.choice != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	} else {
		b.WriteString(layout.Center(width, lipgloss.NewStyle(), "Answer: "+s.input.View()))
	}
	b.WriteString("\n\n")

	if s.verdict != nil {
		b.WriteString(s.renderFeedback(width, item.Answer, item.Explanation))
	}

	return b.String()
}

// renderProgress shows the box chart in spaced mode and a plain progress
// bar otherwise.
func (s *LearnScreen) renderProgress(width int) string {
	sched := s.sess.Scheduler()
	sum := sched.Summary()
	barWidth := min(width-8, 60)

	if s.sess.Spaced() {
		bar := components.NewProgressBar("Mastery", sum.MasteryPercentage()/100, true, barWidth).View()
		chart := components.NewBoxChart(sched.BoxCounts(), barWidth).View()
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar+"\n\n"+chart)
	}

	done := 0.0
	if sum.TotalItems > 0 {
		done = float64(s.sess.Stats().TotalReviewed) / float64(sum.TotalItems)
	}
	bar := components.NewProgressBar("Progress", done, true, barWidth)
	bar.Detail = fmt.Sprintf("%d/%d", s.sess.Stats().TotalReviewed, sum.TotalItems)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
}

func (s *LearnScreen) renderFeedback(width int, answer, explanation string) string {
	var b strings.Builder

	style := theme.Incorrect
	switch s.verdict.(type) {
	case matcher.AutoCorrect:
		style = theme.Correct
	case matcher.NeedsUserDecision:
		style = theme.Undecided
	}
	b.WriteString(layout.Center(width, style, matcher.Describe(s.verdict)))
	b.WriteString("\n")

	if _, ok := s.verdict.(matcher.AutoCorrect); !ok {
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("Correct answer: %s", answer)))
		b.WriteString("\n")
	}

	if explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(explanation)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case s.sess.Pending():
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Text),
			"Count this answer as correct?"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.decision.View()))
	case s.sess.Answered():
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			"Press Enter to continue..."))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "End session early?"))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Your results so far will be saved."))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return layout.Center(width, lipgloss.NewStyle().Foreground(theme.Error),
		fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
