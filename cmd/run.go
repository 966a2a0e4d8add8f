package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/rehearse/internal/config"
	"github.com/abhisek/rehearse/internal/logging"
	"github.com/abhisek/rehearse/internal/screens/home"
	"github.com/abhisek/rehearse/internal/store"
	"github.com/abhisek/rehearse/internal/typing"
)

// env bundles what every command needs: configuration, storage and a logger.
type env struct {
	cfg     *config.Config
	cfgPath string
	dbPath  string
	store   *store.Store
	logger  *slog.Logger
	closers []io.Closer
}

// openEnv resolves the config, opens the log file and the database.
func openEnv(cmd *cobra.Command) (*env, error) {
	e, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	e.logger = logging.Discard()
	if dir, err := store.DataHome(); err == nil {
		logger, closer, err := logging.Setup(filepath.Join(dir, logging.FileName), verbose)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		} else {
			e.logger = logger
			e.closers = append(e.closers, closer)
		}
	}

	e.dbPath, err = resolveDBPath(cmd, e.cfg)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	e.store, err = store.Open(e.dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.closers = append(e.closers, e.store)
	return e, nil
}

// loadConfig reads the config file named by --config or its fallbacks.
func loadConfig(cmd *cobra.Command) (*env, error) {
	flag, _ := cmd.Flags().GetString("config")
	path, err := config.ResolvePath(flag)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, cfgPath: path}, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then REHEARSE_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Paths.Database != "" {
		return cfg.Paths.Database, store.EnsureDir(cfg.Paths.Database)
	}
	return store.DefaultDBPath()
}

// Close releases resources in reverse order of acquisition.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
	e.closers = nil
}

func (e *env) services() home.Services {
	return home.Services{
		Config:     e.cfg,
		ConfigPath: e.cfgPath,
		Scores:     e.store.HighScoreRepo(),
		Sessions:   e.store.SessionRepo(),
		Words:      &typing.Loader{DataDir: e.cfg.Paths.DataDir, Cache: typing.NewWordCache()},
		Logger:     e.logger,
	}
}
