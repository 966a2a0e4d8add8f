// Package picker lists learning-set files and starts a learn screen for the
// chosen one.
package picker

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/abhisek/rehearse/internal/learning"
	"github.com/abhisek/rehearse/internal/logging"
	"github.com/abhisek/rehearse/internal/router"
	"github.com/abhisek/rehearse/internal/screen"
	"github.com/abhisek/rehearse/internal/screens/learn"
	"github.com/abhisek/rehearse/internal/ui/components"
	"github.com/abhisek/rehearse/internal/ui/layout"
	"github.com/abhisek/rehearse/internal/ui/theme"
)

// setsChangedMsg reports that a file was added to or removed from the
// learning-set directory.
type setsChangedMsg struct{}

// PickerScreen shows the learning sets found in a directory.
type PickerScreen struct {
	dir     string
	opts    learn.Options
	files   []string
	menu    components.Menu
	errMsg  string
	watcher *fsnotify.Watcher
	armed   atomic.Bool // a watch command is waiting for the next change
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New scans dir for learning sets. Sets are started with opts.
func New(dir string, opts learn.Options) *PickerScreen {
	p := &PickerScreen{dir: dir, opts: opts}
	p.refresh()
	return p
}

func (p *PickerScreen) refresh() {
	files, err := learning.ListSets(p.dir)
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	p.files = files
	selected := p.menu.Selected

	items := make([]components.MenuItem, len(files))
	for i, f := range files {
		items[i] = components.MenuItem{
			Label:  filepath.Base(f),
			Action: p.open(f),
		}
	}
	p.menu = components.NewMenu(items)
	p.menu.Selected = min(selected, max(len(items)-1, 0))
}

func (p *PickerScreen) open(path string) func() tea.Cmd {
	return func() tea.Cmd {
		set, err := learning.LoadAuto(path)
		if err != nil {
			p.errMsg = err.Error()
			return nil
		}
		p.errMsg = ""
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: learn.New(set, p.opts)}
		}
	}
}

// Init starts watching the directory so the list follows files being added
// or removed. Without a watcher the list is only refreshed on R.
func (p *PickerScreen) Init() tea.Cmd {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logging.OrDiscard(p.opts.Logger).Warn("watch learning sets", "error", err)
		return nil
	}
	if err := w.Add(p.dir); err != nil {
		w.Close()
		return nil
	}
	p.watcher = w
	return p.watch()
}

// watch blocks until the watched directory gains, loses or renames an entry.
// It yields nil once the watcher is closed. The change message can be
// delivered to another screen while this one is covered; the next message
// the picker sees then rescans and re-arms the watch.
func (p *PickerScreen) watch() tea.Cmd {
	w := p.watcher
	p.armed.Store(true)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					p.armed.Store(false)
					return setsChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// Close stops the directory watcher.
func (p *PickerScreen) Close() error {
	if p.watcher == nil {
		return nil
	}
	err := p.watcher.Close()
	p.watcher = nil
	return err
}

func (p *PickerScreen) Title() string {
	return "Choose a Set"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "S", Description: fmt.Sprintf("Spaced: %s", onOff(p.opts.Spaced))},
		{Key: "R", Description: "Rescan"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var rearm tea.Cmd
	if p.watcher != nil && !p.armed.Load() {
		p.refresh()
		rearm = p.watch()
	}
	if _, ok := msg.(setsChangedMsg); ok {
		return p, rearm
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "s", "S":
			p.opts.Spaced = !p.opts.Spaced
			return p, rearm
		case "r", "R":
			p.errMsg = ""
			p.refresh()
			return p, rearm
		}
	}
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, tea.Batch(rearm, cmd)
}

func (p *PickerScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(layout.Center(width, theme.Title, "Learning Sets"))
	b.WriteString("\n")
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim), p.dir))
	b.WriteString("\n")
	b.WriteString(layout.Divider(width, 60))
	b.WriteString("\n\n")

	if len(p.files) == 0 {
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			"No learning sets found.\nAdd .json, .csv or .md files to this directory."))
	} else {
		list := lipgloss.NewStyle().Width(min(width-8, 60)).Render(p.menu.View())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list))
	}

	b.WriteString("\n\n")
	mode := "Mode: one pass through the set"
	if p.opts.Spaced {
		mode = "Mode: spaced repetition until every item is mastered"
	}
	b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Secondary), mode))

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Center(width, lipgloss.NewStyle().Foreground(theme.Error), "Error: "+p.errMsg))
	}

	return b.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
