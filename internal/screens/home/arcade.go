package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

// glyphs holds block letters for the title, six rows each.
var glyphs = map[rune][6]string{
	'R': {"██████╗ ", "██╔══██╗", "██████╔╝", "██╔══██╗", "██║  ██║", "╚═╝  ╚═╝"},
	'E': {"███████╗", "██╔════╝", "█████╗  ", "██╔══╝  ", "███████╗", "╚══════╝"},
	'H': {"██╗  ██╗", "██║  ██║", "███████║", "██╔══██║", "██║  ██║", "╚═╝  ╚═╝"},
	'A': {" █████╗ ", "██╔══██╗", "███████║", "██╔══██║", "██║  ██║", "╚═╝  ╚═╝"},
	'S': {"███████╗", "██╔════╝", "███████╗", "╚════██║", "███████║", "╚══════╝"},
}

const titleWord = "REHEARSE"

const titleCompact = "R · E · H · E · A · R · S · E"

// blockTitle spells word in block letters. Unknown letters are skipped.
func blockTitle(word string) string {
	var rows [6]strings.Builder
	for _, r := range word {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// renderTitle returns the block title, or the compact one when the block
// letters do not fit.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)

	title := blockTitle(titleWord)
	if compact || lipgloss.Width(title) > cw {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard numbers in a bordered box matching
// content width.
func renderStatsBar(sets int, bestWPM float64, sessions int, cw int, compact bool) string {
	setStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	wpmStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	sessionStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			setStyle.Render(fmt.Sprintf("▤%d", sets)),
			wpmStyle.Render(fmt.Sprintf("⚡%.0f", bestWPM)),
			sessionStyle.Render(fmt.Sprintf("★%d", sessions)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			setStyle.Render(fmt.Sprintf("▤ %d SETS", sets)),
			wpmStyle.Render(fmt.Sprintf("⚡ %.0f BEST WPM", bestWPM)),
			sessionStyle.Render(fmt.Sprintf("★ %d SESSIONS", sessions)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(labels []string, selected int, cw int) string {
	buttons := make([]string, len(labels))
	for i, label := range labels {
		buttons[i] = components.MenuButton(label, i == selected, false, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for terminals where
// bordered buttons would overflow.
func renderMenuCompact(labels []string, selected int, cw int) string {
	lines := make([]string, len(labels))
	for i, label := range labels {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
