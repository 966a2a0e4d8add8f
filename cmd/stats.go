package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/rehearse/internal/report"
	"github.com/abhisek/rehearse/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show typing high scores and recent learning sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, diff, err := typingFlags(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		return printStats(cmd, cmd.OutOrStdout(), e.store, string(lang), string(diff), limit)
	},
}

func init() {
	statsCmd.Flags().StringP("language", "l", "", "Only show scores for this language (en, de)")
	statsCmd.Flags().StringP("difficulty", "d", "", "Only show scores for this difficulty (easy, medium, hard)")
	statsCmd.Flags().IntP("limit", "n", 10, "Number of rows per table")
}

func printStats(cmd *cobra.Command, w io.Writer, st *store.Store, lang, diff string, limit int) error {
	ctx := cmd.Context()
	scores, err := st.HighScoreRepo().Filtered(ctx, lang, diff)
	if err != nil {
		return fmt.Errorf("load high scores: %w", err)
	}
	stats, err := st.HighScoreRepo().Statistics(ctx)
	if err != nil {
		return fmt.Errorf("load statistics: %w", err)
	}
	sessions, err := st.SessionRepo().RecentSessions(ctx, store.QueryOpts{Limit: limit})
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	for _, line := range report.StatisticsLines(stats) {
		lipgloss.Fprintln(w, line)
	}
	if len(scores) > 0 {
		lipgloss.Fprintln(w, "\nHigh scores")
		lipgloss.Fprintln(w, report.HighScoreTable(scores[:min(len(scores), limit)]))
	}
	if len(sessions) > 0 {
		lipgloss.Fprintln(w, "\nRecent sessions")
		lipgloss.Fprintln(w, report.SessionTable(sessions))
	}
	return nil
}
