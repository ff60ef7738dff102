package tui

import (
	"os"
	"path/filepath"

	"midic/internal/errors"
	"midic/internal/log"
	"midic/internal/player"
	"midic/internal/playlist"
	"midic/internal/tui/components"
	"midic/internal/tui/messages"
	"midic/internal/watch"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Workdir is the working directory the browser navigates. Only the
// browser changes it.
type Workdir interface {
	Chdir(dir string) error
	Getwd() (string, error)
}

type processWorkdir struct{}

func (processWorkdir) Chdir(dir string) error  { return os.Chdir(dir) }
func (processWorkdir) Getwd() (string, error) { return os.Getwd() }

// DirWatcher reports changes to the directory on display.
type DirWatcher interface {
	Watch(dir string) error
	Changes() <-chan watch.Change
}

// Model is the browser controller. It turns key presses into playlist
// moves, directory changes and playback, one message at a time.
type Model struct {
	playlist *playlist.Model
	player   player.Player
	workdir  Workdir
	watcher  DirWatcher
	keys     KeyMap
	renderer *components.Renderer

	currentDir string
	quitting   bool
}

// Option configures a Model.
type Option func(*Model)

// WithWorkdir replaces the process working directory.
func WithWorkdir(w Workdir) Option {
	return func(m *Model) {
		m.workdir = w
	}
}

// WithWatcher refreshes the listing when the directory changes on disk.
func WithWatcher(w DirWatcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// New returns a controller browsing the current working directory.
func New(pl *playlist.Model, p player.Player, opts ...Option) *Model {
	m := &Model{
		playlist: pl,
		player:   p,
		workdir:  processWorkdir{},
		keys:     DefaultKeyMap(),
		renderer: components.NewRenderer(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.reload()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd = m.handleKeyMsg(msg)
	case messages.DirectoryChangedMsg:
		if msg.Dir == m.currentDir {
			m.refresh()
		}
		cmd = m.waitForChange()
	case messages.WatchClosedMsg:
		m.watcher = nil
	}

	m.playlist.AdjustScroll(m.VisibleRows())
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.playlist.MoveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.playlist.MoveSelection(1)
	case key.Matches(msg, m.keys.PageUp):
		m.playlist.PageMove(m.VisibleRows(), -1)
	case key.Matches(msg, m.keys.PageDown):
		m.playlist.PageMove(m.VisibleRows(), 1)
	case key.Matches(msg, m.keys.Activate):
		m.activate()
	case key.Matches(msg, m.keys.Play):
		if e, ok := m.playlist.CurrentEntry(); ok && e.IsPlayable() {
			m.play(e)
		}
	}
	return nil
}

func (m *Model) activate() {
	e, ok := m.playlist.CurrentEntry()
	if !ok {
		return
	}
	switch {
	case e.IsDir():
		m.changeDir(e.Name)
	case e.IsPlayable():
		m.play(e)
	}
}

// changeDir enters dir and rescans whatever directory the process ends up
// in, so a failed change shows the previous directory freshly listed.
func (m *Model) changeDir(dir string) {
	if err := m.workdir.Chdir(dir); err != nil {
		log.WithError(err).WithField("dir", dir).Debug("chdir failed")
	}
	m.reload()
}

func (m *Model) reload() {
	wd, err := m.workdir.Getwd()
	if err != nil {
		log.WithError(err).Debug("getwd failed")
		wd = "."
	}
	m.currentDir = wd
	m.playlist.Reload(wd)

	if m.watcher != nil {
		if err := m.watcher.Watch(wd); err != nil {
			log.WithError(err).WithField("dir", wd).Debug("watch failed")
		}
	}
}

// refresh rescans the current directory and puts the cursor back on the
// entry it was on, if that entry still exists.
func (m *Model) refresh() {
	current, ok := m.playlist.CurrentEntry()
	m.playlist.Reload(m.currentDir)
	if ok {
		m.playlist.Select(current.Name)
	}
}

func (m *Model) play(e playlist.Entry) {
	path := e.Name
	if m.currentDir != "" && m.currentDir != "." {
		path = filepath.Join(m.currentDir, e.Name)
	}
	err := m.player.Play(path)
	switch {
	case err == nil:
	case errors.IsPlayerError(err):
		log.WithError(err).WithField("kind", errors.KindOf(err)).Warn("playback failed")
	default:
		log.WithError(err).WithField("file", path).Debug("playback failed")
	}
}

func (m *Model) quit() tea.Cmd {
	if err := m.player.Stop(); err != nil {
		log.WithError(err).Warn("stop failed")
	}
	m.quitting = true
	return tea.Quit
}

func (m *Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Changes()
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return messages.WatchClosedMsg{}
		}
		return messages.DirectoryChangedMsg{Dir: c.Dir}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	current, ok := m.playlist.CurrentEntry()

	return m.renderer.Layout(
		m.renderer.DrawPlaylist(m.playlist.Entries(), m.playlist.Selected(), m.playlist.Offset(), m.VisibleRows()),
		m.renderer.DrawInfo(current, ok),
		m.renderer.DrawFooter(m.keys),
	)
}

// VisibleRows is the playlist viewport height.
func (m *Model) VisibleRows() int {
	return m.renderer.VisibleRows()
}

// CurrentDir returns the directory on display.
func (m *Model) CurrentDir() string {
	return m.currentDir
}

// Playlist returns the model's playlist.
func (m *Model) Playlist() *playlist.Model {
	return m.playlist
}

// Quitting reports whether quit was requested.
func (m *Model) Quitting() bool {
	return m.quitting
}
