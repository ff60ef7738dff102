package playlist

// Kind tells directories and playable files apart.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// ParentName is the name of the synthetic "go to parent" entry.
const ParentName = ".."

// Entry is one listed item. Entries are values and are never modified
// after a listing is built.
type Entry struct {
	Name     string
	Kind     Kind
	IsParent bool
}

// ParentEntry returns the synthetic parent marker.
func ParentEntry() Entry {
	return Entry{Name: ParentName, Kind: Directory, IsParent: true}
}

// IsDir reports whether activating the entry changes directory.
func (e Entry) IsDir() bool {
	return e.Kind == Directory
}

// IsPlayable reports whether the entry is a file that can be played.
func (e Entry) IsPlayable() bool {
	return e.Kind == File && !e.IsParent
}
