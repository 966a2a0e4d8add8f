package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar. Percent runs from 0 to 1.
// A non-empty Detail (e.g. "3/10") replaces the percentage text.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Detail      string
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	suffix := ""
	switch {
	case p.Detail != "":
		suffix = "  " + p.Detail
	case p.ShowPercent:
		pct := min(max(int(p.Percent*100), 0), 100)
		suffix = fmt.Sprintf("  %d%%", pct)
	}
	percentWidth := lipgloss.Width(suffix)

	barWidth := max(p.Width-labelWidth-percentWidth, 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	empty := barWidth - filled

	filledStr := theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	emptyStr := theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if suffix != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	}

	return result
}
