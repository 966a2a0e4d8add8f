package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/rehearse/internal/app"
)

var errNoTerminal = errors.New("the interactive UI needs a terminal (see 'rehearse stats' for plain output)")

var rootCmd = &cobra.Command{
	Use:   "rehearse",
	Short: "Flashcard trainer and typing tutor",
	Long:  "Rehearse: terminal app for studying learning sets with spaced repetition and practicing touch typing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides REHEARSE_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REHEARSE_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write debug records to the log file")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(typingCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp opens the environment and launches the TUI, optionally starting on
// a screen built from it.
func runApp(cmd *cobra.Command, start func(*env) (app.Options, error)) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	opts := app.Options{Services: e.services()}
	if start != nil {
		if opts, err = start(e); err != nil {
			return err
		}
	}
	e.logger.Info("starting ui", "config", e.cfgPath, "db", e.dbPath)
	return app.Run(opts)
}
