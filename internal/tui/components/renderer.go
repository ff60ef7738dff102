package components

import (
	"strings"

	"midic/internal/playlist"
	"midic/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// rows used by the pane borders, the pane title and the footer
	chromeRows = 5
)

// Renderer draws the browser as two boxed panes over a key legend. It
// only reads the state it is given.
type Renderer struct {
	width  int
	height int
	help   help.Model
}

func NewRenderer() *Renderer {
	h := help.New()
	h.Styles.ShortKey = styles.Theme.Help.Bold(true)
	h.Styles.ShortDesc = styles.Theme.Help
	h.Styles.ShortSeparator = styles.Theme.Help
	h.ShortSeparator = "   "

	return &Renderer{
		width:  DefaultWidth,
		height: DefaultHeight,
		help:   h,
	}
}

// SetSize records the terminal size.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.help.Width = width
}

// VisibleRows is the number of playlist rows that fit on screen.
func (r *Renderer) VisibleRows() int {
	return max(r.height-chromeRows, 1)
}

func (r *Renderer) paneWidth() int {
	return max(r.width/2, 6)
}

// textWidth is the room left for a name inside a pane.
func (r *Renderer) textWidth() int {
	return r.paneWidth() - 4
}

func (r *Renderer) pane(title string, lines []string) string {
	body := append([]string{styles.Theme.Title.Render(title)}, lines...)
	return styles.Theme.Pane.
		Width(r.paneWidth() - 2).
		Height(max(r.height-4, 0)).
		MaxHeight(max(r.height-r.footerRows(), 1)).
		Render(strings.Join(body, "\n"))
}

// footerRows is 1 while the full chrome fits, and 0 on terminals too
// short to show a playlist row under it.
func (r *Renderer) footerRows() int {
	if r.height > chromeRows {
		return 1
	}
	return 0
}

// Label is the text shown for an entry in the playlist.
func Label(e playlist.Entry) string {
	if e.IsDir() {
		return "[" + e.Name + "]"
	}
	return e.Name
}

// DrawPlaylist renders entries[offset:offset+visibleRows], marking the
// selected index.
func (r *Renderer) DrawPlaylist(entries []playlist.Entry, selected, offset, visibleRows int) string {
	var lines []string
	for i := 0; i < visibleRows; i++ {
		idx := offset + i
		if idx < 0 || idx >= len(entries) {
			break
		}
		e := entries[idx]
		name := runewidth.Truncate(Label(e), r.textWidth(), "")

		style := styles.Theme.File
		if e.IsDir() {
			style = styles.Theme.Directory
		}
		if idx == selected {
			style = styles.Theme.Selected
		}
		lines = append(lines, style.Render(name))
	}
	return r.pane("Playlist", lines)
}

// DrawInfo renders the details pane for the selected entry.
func (r *Renderer) DrawInfo(e playlist.Entry, ok bool) string {
	var lines []string
	if ok {
		text := "Selected: " + e.Name
		if e.IsParent {
			text = "Parent Folder"
		}
		lines = append(lines, "", styles.Theme.Info.Render(runewidth.Truncate(text, r.textWidth(), "")))
	}
	return r.pane("MIDI Info", lines)
}

// DrawFooter renders the key legend, or nothing when there is no room.
func (r *Renderer) DrawFooter(keys help.KeyMap) string {
	if r.footerRows() == 0 {
		return ""
	}
	return r.help.View(keys)
}

// Layout places the panes side by side above the footer.
func (r *Renderer) Layout(playlistPane, infoPane, footer string) string {
	if footer == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, playlistPane, infoPane)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, playlistPane, infoPane),
		footer,
	)
}
