package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(io.Discard)
		SetDebug(false)
	})
	return &buf
}

func TestDiscardedByDefault(t *testing.T) {
	l := NewLogger()
	assert.Equal(t, io.Discard, l.Out)
}

func TestStructuredLogging(t *testing.T) {
	buf := captureOutput(t)

	WithField("dir", "/music").Info("reloaded")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "dir=/music")
	assert.Contains(t, buf.String(), "reloaded")
	buf.Reset()

	WithError(fmt.Errorf("boom")).Warn("stop failed")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestDebugLevel(t *testing.T) {
	buf := captureOutput(t)

	SetDebug(false)
	WithField("dir", "/music").Debug("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	WithField("dir", "/music").Debugf("listing capped, %d dropped", 3)
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "listing capped, 3 dropped")
}

func TestOpenFile(t *testing.T) {
	t.Cleanup(func() { SetOutput(io.Discard) })

	path := filepath.Join(t.TempDir(), "midic.log")
	f, err := OpenFile(path)
	require.NoError(t, err)

	WithField("player", "aplaymidi").Warn("player missing")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "player missing")
	assert.Contains(t, string(data), "player=aplaymidi")
}

func TestOpenFileError(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "missing", "midic.log"))
	assert.Error(t, err)
}
