package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/rehearse/internal/app"
	"github.com/abhisek/rehearse/internal/screens/typingtest"
	"github.com/abhisek/rehearse/internal/typing"
)

var typingCmd = &cobra.Command{
	Use:   "typing",
	Short: "Start a typing test",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, diff, err := typingFlags(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, func(e *env) (app.Options, error) {
			svc := e.services()
			opts := svc.TypingOptions()
			if lang != "" {
				opts.Language = lang
			}
			if diff != "" {
				opts.Difficulty = diff
			}
			return app.Options{Services: svc, Start: typingtest.New(opts)}, nil
		})
	},
}

func init() {
	typingCmd.Flags().StringP("language", "l", "", "Word list language (en, de)")
	typingCmd.Flags().StringP("difficulty", "d", "", "Difficulty (easy, medium, hard)")
}

// typingFlags parses --language and --difficulty. Unset flags come back as
// zero values.
func typingFlags(cmd *cobra.Command) (typing.Language, typing.Difficulty, error) {
	var (
		lang typing.Language
		diff typing.Difficulty
		err  error
	)
	if s, _ := cmd.Flags().GetString("language"); s != "" {
		if lang, err = typing.ParseLanguage(s); err != nil {
			return "", "", err
		}
	}
	if s, _ := cmd.Flags().GetString("difficulty"); s != "" {
		if diff, err = typing.ParseDifficulty(s); err != nil {
			return "", "", err
		}
	}
	return lang, diff, nil
}
