package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"all parts", NewFileError("cannot open log file", "/tmp/x.log", fmt.Errorf("boom")), "cannot open log file: /tmp/x.log: boom"},
		{"no cause", NewFileError("cannot open log file", "/tmp/x.log", nil), "cannot open log file: /tmp/x.log"},
		{"no subject", Wrap(fmt.Errorf("boom"), "cannot start watcher"), "cannot start watcher: boom"},
		{"config", NewConfigError("player.command", fmt.Errorf("must not be empty")), "invalid configuration: player.command: must not be empty"},
		{"player", NewPlayerError("aplaymidi", fmt.Errorf("not found")), "cannot start player: aplaymidi: not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDirectoryErrorKinds(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		missing := t.TempDir() + "/nope"
		err := NewDirectoryError("cannot change to directory", missing, os.Chdir(missing))
		assert.Equal(t, DirectoryNotFound, err.Kind())
		assert.True(t, IsDirectoryNotFound(err))
		assert.True(t, errors.Is(err, fs.ErrNotExist), "cause stays reachable")
	})

	t.Run("permission", func(t *testing.T) {
		cause := &fs.PathError{Op: "chdir", Path: "/root", Err: fs.ErrPermission}
		err := NewDirectoryError("cannot change to directory", "/root", cause)
		assert.True(t, IsAccessDenied(err))
		assert.False(t, IsDirectoryNotFound(err))
	})

	t.Run("other", func(t *testing.T) {
		err := NewDirectoryError("cannot change to directory", "/tmp/a.mid", fmt.Errorf("not a directory"))
		assert.Equal(t, NotADirectory, err.Kind())
	})

	t.Run("file fallback", func(t *testing.T) {
		err := NewFileError("cannot open log file", "/tmp/x.log", fmt.Errorf("disk full"))
		assert.Equal(t, Unknown, err.Kind())
	})
}

func TestWrapKeepsKind(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	inner := NewConfigError("player.kill", nil)
	err := Wrap(Wrap(inner, "startup"), "midic")
	assert.Equal(t, "midic: startup: invalid configuration: player.kill", err.Error())
	assert.True(t, IsInvalidConfig(err))

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Same(t, inner, ce)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(nil))
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
	assert.Equal(t, PlayerStartFailed, KindOf(fmt.Errorf("play: %w", NewPlayerError("aplaymidi", nil))))
}

func TestIsPlayerError(t *testing.T) {
	cause := errors.New("executable file not found in $PATH")
	err := NewPlayerError("aplaymidi", cause)
	assert.True(t, IsPlayerError(err))
	assert.True(t, IsPlayerError(Wrap(err, "play")))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsPlayerError(cause))
	assert.False(t, IsPlayerError(NewConfigError("player.command", nil)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "directory_not_found", DirectoryNotFound.String())
	assert.Equal(t, "player_start_failed", PlayerStartFailed.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}
