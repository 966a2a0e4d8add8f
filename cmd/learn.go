package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/rehearse/internal/app"
	"github.com/abhisek/rehearse/internal/learning"
	"github.com/abhisek/rehearse/internal/screens/learn"
)

var learnCmd = &cobra.Command{
	Use:   "learn FILE",
	Short: "Study a learning set (JSON, CSV or Markdown)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := learning.LoadAuto(args[0])
		if err != nil {
			return err
		}
		return runApp(cmd, func(e *env) (app.Options, error) {
			svc := e.services()
			opts := svc.LearnOptions()
			if cmd.Flags().Changed("spaced") {
				opts.Spaced, _ = cmd.Flags().GetBool("spaced")
			}
			return app.Options{Services: svc, Start: learn.New(set, opts)}, nil
		})
	},
}

func init() {
	learnCmd.Flags().Bool("spaced", true, "Repeat items with Leitner boxes until all are mastered")
}
