// Package playlist holds the browsable listing of one directory together
// with the cursor and scroll position used to render it.
package playlist

import (
	"midic/internal/log"
)

// Model owns a directory listing and its cursor. It knows nothing about
// rendering or playback.
//
// After AdjustScroll the selection is always inside the viewport:
// offset <= selected <= offset+visibleRows-1.
type Model struct {
	entries  []Entry
	selected int
	offset   int
}

// New returns an empty model. Call Reload to populate it.
func New() *Model {
	return &Model{}
}

// Reload replaces the listing with the contents of dir and resets the
// cursor and scroll position. An unreadable directory yields a listing
// holding only the parent marker.
func (m *Model) Reload(dir string) {
	entries, dropped, err := scan(dir)
	if err != nil {
		log.WithError(err).WithField("dir", dir).Debug("directory unreadable")
	}
	if dropped > 0 {
		log.WithField("dir", dir).WithField("dropped", dropped).Debug("listing capped")
	}

	m.entries = entries
	m.selected = 0
	m.offset = 0
}

// MoveSelection moves the cursor by delta, clamped to the listing.
func (m *Model) MoveSelection(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.selected = clamp(m.selected+delta, 0, len(m.entries)-1)
}

// PageMove moves the cursor by pageSize rows in the direction given by
// the sign of direction.
func (m *Model) PageMove(pageSize, direction int) {
	if pageSize <= 0 || direction == 0 {
		return
	}
	if direction < 0 {
		m.MoveSelection(-pageSize)
		return
	}
	m.MoveSelection(pageSize)
}

// AdjustScroll moves the viewport the minimum amount needed to show the
// selection.
func (m *Model) AdjustScroll(visibleRows int) {
	m.offset = ScrollOffset(m.selected, m.offset, visibleRows)
}

// ScrollOffset returns the viewport offset that keeps selected visible in
// a window of visibleRows rows, starting from offset.
func ScrollOffset(selected, offset, visibleRows int) int {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if selected < offset {
		offset = selected
	}
	if selected > offset+visibleRows-1 {
		offset = selected - visibleRows + 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// CurrentEntry returns the selected entry, or false when the listing is
// empty.
func (m *Model) CurrentEntry() (Entry, bool) {
	if len(m.entries) == 0 {
		return Entry{}, false
	}
	return m.entries[m.selected], true
}

// Select moves the cursor to the entry called name.
func (m *Model) Select(name string) bool {
	for i, e := range m.entries {
		if e.Name == name {
			m.selected = i
			return true
		}
	}
	return false
}

// Entries returns a copy of the listing.
func (m *Model) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Model) Len() int {
	return len(m.entries)
}

func (m *Model) Selected() int {
	return m.selected
}

func (m *Model) Offset() int {
	return m.offset
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
