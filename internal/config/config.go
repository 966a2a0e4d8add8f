// Package config loads and validates the YAML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/rehearse/internal/matcher"
	"github.com/abhisek/rehearse/internal/typing"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "REHEARSE_CONFIG"

// Config is the application configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Learning LearningConfig `yaml:"learning"`
}

// PathsConfig locates data on disk. Relative paths are resolved against the
// working directory.
type PathsConfig struct {
	DataDir         string `yaml:"data_dir"`          // word lists
	LearningSetsDir string `yaml:"learning_sets_dir"` // learning-set files for the picker
	Database        string `yaml:"database"`          // empty = default data home
}

// DefaultsConfig holds typing-test defaults.
type DefaultsConfig struct {
	Language                string  `yaml:"language"`
	Difficulty              string  `yaml:"difficulty"`
	MinAccuracyForHighscore float64 `yaml:"min_accuracy_for_highscore"`
	MaxHighscores           int     `yaml:"max_highscores"`
	PlayerName              string  `yaml:"player_name"`
}

// LearningConfig tunes answer matching and scheduling.
type LearningConfig struct {
	FuzzyThreshold   float64 `yaml:"fuzzy_threshold"`
	DecisionMargin   float64 `yaml:"decision_margin"`
	SpacedRepetition bool    `yaml:"spaced_repetition"`
	LeitnerBoxes     int     `yaml:"leitner_boxes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			DataDir:         "data",
			LearningSetsDir: filepath.Join("data", "learning_sets"),
		},
		Defaults: DefaultsConfig{
			Language:                "en",
			Difficulty:              "medium",
			MinAccuracyForHighscore: 80,
			MaxHighscores:           50,
			PlayerName:              "Player",
		},
		Learning: LearningConfig{
			FuzzyThreshold:   matcher.DefaultThreshold,
			DecisionMargin:   matcher.DefaultDecisionMargin,
			SpacedRepetition: true,
			LeitnerBoxes:     5,
		},
	}
}

// Load reads the file at path. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create config directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config %s", path)
	}
	return nil
}

// Validate checks every value for its allowed range.
func (c *Config) Validate() error {
	l := c.Learning
	if l.FuzzyThreshold < 0 || l.FuzzyThreshold > 1 {
		return errors.Errorf("learning.fuzzy_threshold must be between 0.0 and 1.0, got %v", l.FuzzyThreshold)
	}
	if l.DecisionMargin < 0 || l.DecisionMargin > matcher.MaxDecisionMargin {
		return errors.Errorf("learning.decision_margin must be between 0.0 and %.1f, got %v", matcher.MaxDecisionMargin, l.DecisionMargin)
	}
	if l.LeitnerBoxes < 2 || l.LeitnerBoxes > 10 {
		return errors.Errorf("learning.leitner_boxes must be between 2 and 10, got %d", l.LeitnerBoxes)
	}

	d := c.Defaults
	if d.MinAccuracyForHighscore < 0 || d.MinAccuracyForHighscore > 100 {
		return errors.Errorf("defaults.min_accuracy_for_highscore must be between 0.0 and 100.0, got %v", d.MinAccuracyForHighscore)
	}
	if d.MaxHighscores < 1 {
		return errors.Errorf("defaults.max_highscores must be positive, got %d", d.MaxHighscores)
	}
	if _, err := typing.ParseLanguage(d.Language); err != nil {
		return errors.Wrap(err, "defaults.language")
	}
	if _, err := typing.ParseDifficulty(d.Difficulty); err != nil {
		return errors.Wrap(err, "defaults.difficulty")
	}
	return nil
}

// Matcher builds the answer matcher for the configured threshold and
// margin.
func (c *Config) Matcher() *matcher.Matcher {
	return matcher.New(c.Learning.FuzzyThreshold, c.Learning.DecisionMargin)
}

// Language returns the default typing language, falling back to English.
func (c *Config) Language() typing.Language {
	if l, err := typing.ParseLanguage(c.Defaults.Language); err == nil {
		return l
	}
	return typing.English
}

// Difficulty returns the default typing difficulty, falling back to medium.
func (c *Config) Difficulty() typing.Difficulty {
	if d, err := typing.ParseDifficulty(c.Defaults.Difficulty); err == nil {
		return d
	}
	return typing.Medium
}

// ResolvePath picks the config file location in priority order:
// 1. flag, when non-empty
// 2. REHEARSE_CONFIG environment variable
// 3. $XDG_CONFIG_HOME/rehearse/config.yaml
// 4. ~/.config/rehearse/config.yaml
func ResolvePath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "resolve home dir")
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "rehearse", "config.yaml"), nil
}
