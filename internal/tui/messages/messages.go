package messages

// DirectoryChangedMsg reports that the contents of Dir changed on disk.
type DirectoryChangedMsg struct {
	Dir string
}

// WatchClosedMsg reports that the directory watcher has stopped.
type WatchClosedMsg struct{}
