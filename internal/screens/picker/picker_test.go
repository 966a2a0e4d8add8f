package picker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rehearse/internal/router"
	"github.com/abhisek/rehearse/internal/screens/learn"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestPicker_ListsSets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.csv", "front,back\nHund,dog\n")
	writeFile(t, dir, "a.json", `{"name":"A","cards":[{"front":"x","back":"y"}]}`)
	writeFile(t, dir, "notes.txt", "ignored")

	p := New(dir, learn.Options{})
	assert.Len(t, p.files, 2)
	assert.Equal(t, "a.json", p.menu.Items[0].Label)
	assert.Equal(t, "b.csv", p.menu.Items[1].Label)

	view := p.View(100, 30)
	assert.Contains(t, view, "a.json")
	assert.NotContains(t, view, "notes.txt")
}

func TestPicker_EmptyDirectory(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "missing"), learn.Options{})
	assert.Empty(t, p.files)
	assert.Contains(t, p.View(100, 30), "No learning sets found")
}

func TestPicker_EnterPushesLearnScreen(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "animals.csv", "front,back\nHund,dog\nKatze,cat\n")

	p := New(dir, learn.Options{})
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	assert.Equal(t, "animals", msg.Screen.Title())
}

func TestPicker_InvalidFileShowsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", "{not json")

	p := New(dir, learn.Options{})
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, p.errMsg)
	assert.True(t, strings.Contains(p.View(100, 30), "Error"))
}

func TestPicker_ToggleSpaced(t *testing.T) {
	p := New(t.TempDir(), learn.Options{Spaced: false})
	p.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.True(t, p.opts.Spaced)
	assert.Contains(t, p.View(100, 30), "spaced repetition")
}

func TestPicker_WatchesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "front,back\nHund,dog\n")

	p := New(dir, learn.Options{})
	cmd := p.Init()
	require.NotNil(t, cmd, "watcher should start for an existing directory")
	t.Cleanup(func() { p.Close() })

	got := make(chan tea.Msg, 1)
	go func() { got <- cmd() }()
	writeFile(t, dir, "b.csv", "front,back\nKatze,cat\n")

	select {
	case msg := <-got:
		require.IsType(t, setsChangedMsg{}, msg)
		_, next := p.Update(msg)
		assert.NotNil(t, next, "watching should continue after a change")
		assert.Len(t, p.files, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for a new file")
	}
}

func TestPicker_RearmsAfterChangeDeliveredElsewhere(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "front,back\nHund,dog\n")

	p := New(dir, learn.Options{})
	cmd := p.Init()
	require.NotNil(t, cmd)
	t.Cleanup(func() { p.Close() })

	got := make(chan tea.Msg, 1)
	go func() { got <- cmd() }()
	writeFile(t, dir, "b.csv", "front,back\nKatze,cat\n")

	select {
	case msg := <-got:
		// The change message went to a screen stacked above the picker.
		require.IsType(t, setsChangedMsg{}, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for a new file")
	}
	assert.Len(t, p.files, 1)

	_, next := p.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.NotNil(t, next, "the watch should be re-armed")
	assert.Len(t, p.files, 2, "the missed change should be picked up")

	_, again := p.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, again, "an armed watch must not be started twice")
}

func TestPicker_CloseStopsWatcher(t *testing.T) {
	p := New(t.TempDir(), learn.Options{})
	cmd := p.Init()
	require.NotNil(t, cmd)

	require.NoError(t, p.Close())
	assert.Nil(t, cmd(), "closed watcher should end the wait")
	assert.NoError(t, p.Close())
}

func TestPicker_NoWatcherForMissingDirectory(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "missing"), learn.Options{})
	assert.Nil(t, p.Init())
}
