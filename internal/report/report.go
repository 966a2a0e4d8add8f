// Package report formats stored results as tables for the terminal UI and
// the command line.
package report

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/typing"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

const dateLayout = "2006-01-02 15:04"

// HighScoreTable lays out scores in rank order.
func HighScoreTable(scores []store.HighScore) *table.Table {
	rows := make([][]string, len(scores))
	for i, hs := range scores {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			hs.Name,
			fmt.Sprintf("%.1f", hs.WPM),
			fmt.Sprintf("%.1f%%", hs.Accuracy),
			languageName(hs.Language),
			difficultyName(hs.Difficulty),
			hs.Timestamp.Local().Format(dateLayout),
		}
	}
	return styled(table.New().
		Headers("#", "Name", "WPM", "Accuracy", "Language", "Difficulty", "Date").
		Rows(rows...))
}

// SessionTable lays out learning sessions, newest first.
func SessionTable(sessions []store.SessionRecord) *table.Table {
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		mode := "single pass"
		if s.Spaced {
			mode = "spaced"
		}
		rows[i] = []string{
			s.Timestamp.Local().Format(dateLayout),
			s.SetName,
			mode,
			fmt.Sprintf("%d/%d", s.Correct, s.Reviewed),
			fmt.Sprintf("%.0f%%", s.Accuracy()),
			fmt.Sprintf("%d/%d", s.Mastered, s.Total),
			formatDuration(s.Duration.Seconds()),
		}
	}
	return styled(table.New().
		Headers("Date", "Set", "Mode", "Correct", "Accuracy", "Mastered", "Time").
		Rows(rows...))
}

// StatisticsLines summarizes the aggregate high-score statistics.
func StatisticsLines(st store.HighScoreStats) []string {
	if st.TotalTests == 0 {
		return []string{"No typing tests recorded yet."}
	}
	return []string{
		fmt.Sprintf("Tests: %d", st.TotalTests),
		fmt.Sprintf("Average WPM: %.1f    Best WPM: %.1f", st.AvgWPM, st.BestWPM),
		fmt.Sprintf("Average accuracy: %.1f%%", st.AvgAccuracy),
		fmt.Sprintf("Easy: %d    Medium: %d    Hard: %d", st.EasyCount, st.MediumCount, st.HardCount),
	}
}

func styled(t *table.Table) *table.Table {
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	return t.
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func languageName(code string) string {
	if l, err := typing.ParseLanguage(code); err == nil {
		return l.Name()
	}
	return code
}

func difficultyName(s string) string {
	if d, err := typing.ParseDifficulty(s); err == nil {
		return d.String()
	}
	return s
}

func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
