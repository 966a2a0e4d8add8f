package settings

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rehearse/internal/config"
	"github.com/abhisek/rehearse/internal/typing"
)

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSettings_ChangeValues(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, filepath.Join(t.TempDir(), "config.yaml"))

	s.Update(key(tea.KeyRight))
	assert.Equal(t, typing.German, cfg.Language())

	s.Update(key(tea.KeyDown))
	s.Update(key(tea.KeyLeft))
	assert.Equal(t, typing.Easy, cfg.Difficulty())

	s.Update(key(tea.KeyDown))
	s.Update(key(tea.KeyEnter))
	assert.False(t, cfg.Learning.SpacedRepetition)

	s.Update(key(tea.KeyDown))
	for range 10 {
		s.Update(key(tea.KeyRight))
	}
	assert.Equal(t, 10, cfg.Learning.LeitnerBoxes)
}

func TestSettings_NavigationStaysInRange(t *testing.T) {
	s := New(config.Default(), "unused")
	s.Update(key(tea.KeyUp))
	assert.Equal(t, fieldLanguage, s.selected)
	for range 10 {
		s.Update(key(tea.KeyDown))
	}
	assert.Equal(t, fieldBoxes, s.selected)
}

func TestSettings_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rehearse", "config.yaml")
	cfg := config.Default()
	s := New(cfg, path)

	s.Update(key(tea.KeyRight))
	s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	require.False(t, s.failed, s.message)
	assert.True(t, strings.HasPrefix(s.message, "Saved to"))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de", loaded.Defaults.Language)
}

func TestSettings_SaveRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Learning.FuzzyThreshold = 3
	s := New(cfg, filepath.Join(t.TempDir(), "config.yaml"))

	s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.True(t, s.failed)
	assert.Contains(t, s.View(100, 30), "fuzzy_threshold")
}
