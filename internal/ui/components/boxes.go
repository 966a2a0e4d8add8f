package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/ui/theme"
)

// BoxChart draws one row per Leitner box with a bar proportional to the
// number of items in it. The last box is drawn in the success color.
type BoxChart struct {
	Counts []int
	Width  int
}

// NewBoxChart creates a chart for the given box counts.
func NewBoxChart(counts []int, width int) BoxChart {
	return BoxChart{Counts: counts, Width: width}
}

// View renders the chart.
func (c BoxChart) View() string {
	total := 0
	for _, n := range c.Counts {
		total += n
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	barWidth := max(c.Width-14, 4)
	last := len(c.Counts) - 1

	var b strings.Builder
	for i, n := range c.Counts {
		filled := 0
		if total > 0 {
			filled = min(barWidth*n/total, barWidth)
		}
		if n > 0 && filled == 0 {
			filled = 1
		}

		fill := theme.ProgressFilled
		if i == last {
			fill = lipgloss.NewStyle().Background(theme.Success)
		}

		b.WriteString(label.Render(fmt.Sprintf("Box %d ", i+1)))
		b.WriteString(fill.Render(strings.Repeat(" ", filled)))
		b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))
		b.WriteString(label.Render(fmt.Sprintf(" %3d", n)))
		if i < last {
			b.WriteString("\n")
		}
	}
	return b.String()
}
