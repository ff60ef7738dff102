package playlist

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// MaxEntries caps a listing, parent marker included.
const MaxEntries = 1024

// playable matches lower-cased names; "?" keeps a bare ".mid" out.
var playable = glob.MustCompile("?*.mid")

// IsPlayableName reports whether a file name ends in .mid, ignoring case.
func IsPlayableName(name string) bool {
	return playable.Match(strings.ToLower(name))
}

// classify decides what a directory child is. The type bits from the
// listing are tried first; symlinks and unknown types fall back to a stat
// of the child. ok is false when the child is neither a directory nor a
// regular file, or could not be examined.
func classify(dir string, d fs.DirEntry) (kind Kind, ok bool) {
	if kind, ok := classifyByType(d.Type()); ok {
		return kind, true
	}
	return classifyByStat(filepath.Join(dir, d.Name()))
}

func classifyByType(mode fs.FileMode) (Kind, bool) {
	switch {
	case mode.IsDir():
		return Directory, true
	case mode.IsRegular():
		return File, true
	}
	return File, false
}

func classifyByStat(path string) (Kind, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return File, false
	}
	switch mode := info.Mode(); {
	case mode.IsDir():
		return Directory, true
	case mode.IsRegular():
		return File, true
	}
	return File, false
}

// scan lists dir as [..] + dirs + playable files, each group sorted
// without regard to case and the whole capped at MaxEntries. On a read
// error only the parent marker is returned, together with the error.
func scan(dir string) ([]Entry, int, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return []Entry{ParentEntry()}, 0, err
	}

	var dirs, files []string
	for _, child := range children {
		name := child.Name()
		if name == "." || name == ".." {
			continue
		}
		kind, ok := classify(dir, child)
		if !ok {
			continue
		}
		if kind == Directory {
			dirs = append(dirs, name)
		} else if IsPlayableName(name) {
			files = append(files, name)
		}
	}

	sortFold(dirs)
	sortFold(files)

	entries := make([]Entry, 0, min(1+len(dirs)+len(files), MaxEntries))
	entries = append(entries, ParentEntry())
	for _, name := range dirs {
		entries = append(entries, Entry{Name: name, Kind: Directory})
	}
	for _, name := range files {
		entries = append(entries, Entry{Name: name, Kind: File})
	}

	dropped := 0
	if len(entries) > MaxEntries {
		dropped = len(entries) - MaxEntries
		entries = entries[:MaxEntries:MaxEntries]
	}
	return entries, dropped, nil
}

// sortFold sorts names case-insensitively, falling back to byte order so
// names differing only in case keep a stable position.
func sortFold(names []string) {
	sort.Slice(names, func(i, j int) bool {
		a, b := strings.ToLower(names[i]), strings.ToLower(names[j])
		if a != b {
			return a < b
		}
		return names[i] < names[j]
	})
}
