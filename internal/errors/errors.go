// Package errors holds the typed errors midic reports. Every error carries
// a kind, so callers branch on the failure instead of its text.
package errors

import (
	"errors"
	"io/fs"
	"strings"
)

// ErrorKind classifies a failure.
type ErrorKind int

const (
	Unknown ErrorKind = iota
	DirectoryNotFound
	AccessDenied
	NotADirectory
	InvalidConfig
	PlayerStartFailed
)

var kindNames = map[ErrorKind]string{
	Unknown:           "unknown",
	DirectoryNotFound: "directory_not_found",
	AccessDenied:      "access_denied",
	NotADirectory:     "not_a_directory",
	InvalidConfig:     "invalid_config",
	PlayerStartFailed: "player_start_failed",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

// ApplicationError is the base of every midic error: what failed, the
// path, parameter or command it concerns, and the cause.
type ApplicationError struct {
	msg     string
	subject string
	err     error
	kind    ErrorKind
}

// Error renders "msg: subject: cause", leaving out empty parts.
func (e *ApplicationError) Error() string {
	parts := []string{e.msg}
	if e.subject != "" {
		parts = append(parts, e.subject)
	}
	if e.err != nil {
		parts = append(parts, e.err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *ApplicationError) Unwrap() error {
	return e.err
}

func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError concerns a path on disk.
type FileError struct{ ApplicationError }

// ConfigError concerns one configuration parameter.
type ConfigError struct{ ApplicationError }

// PlayerError concerns the external player command.
type PlayerError struct{ ApplicationError }

// NewFileError reports a failure on path. Missing paths and permission
// failures are recognised from err; anything else is Unknown.
func NewFileError(msg, path string, err error) *FileError {
	return &FileError{ApplicationError{msg: msg, subject: path, err: err, kind: fileKind(err, Unknown)}}
}

// NewDirectoryError is NewFileError for a path that had to be a directory,
// so unrecognised failures are NotADirectory.
func NewDirectoryError(msg, path string, err error) *FileError {
	return &FileError{ApplicationError{msg: msg, subject: path, err: err, kind: fileKind(err, NotADirectory)}}
}

func fileKind(err error, fallback ErrorKind) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return DirectoryNotFound
	case errors.Is(err, fs.ErrPermission):
		return AccessDenied
	}
	return fallback
}

// NewConfigError reports an unusable value for param.
func NewConfigError(param string, err error) *ConfigError {
	return &ConfigError{ApplicationError{msg: "invalid configuration", subject: param, err: err, kind: InvalidConfig}}
}

// NewPlayerError reports that command could not be started.
func NewPlayerError(command string, err error) *PlayerError {
	return &PlayerError{ApplicationError{msg: "cannot start player", subject: command, err: err, kind: PlayerStartFailed}}
}

// Wrap adds context to err and keeps its kind. Wrapping nil returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{msg: msg, err: err, kind: KindOf(err)}
}

// KindOf returns the kind of the outermost midic error in err's chain.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

func IsDirectoryNotFound(err error) bool { return KindOf(err) == DirectoryNotFound }

func IsAccessDenied(err error) bool { return KindOf(err) == AccessDenied }

func IsInvalidConfig(err error) bool { return KindOf(err) == InvalidConfig }

// IsPlayerError reports whether err came from starting the player.
func IsPlayerError(err error) bool {
	var pe *PlayerError
	return errors.As(err, &pe)
}
