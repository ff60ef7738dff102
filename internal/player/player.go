// Package player starts and stops the external MIDI decoder.
package player

import (
	"os/exec"
	"path/filepath"

	"midic/internal/errors"
	"midic/internal/log"
)

// Player plays one file at a time.
type Player interface {
	// Play stops any current playback and starts path in the background.
	Play(path string) error
	// Stop ends playback. It succeeds when nothing is playing.
	Stop() error
}

// Runner creates the external processes.
type Runner interface {
	// Run executes a command and waits for it.
	Run(name string, args ...string) error
	// Start launches a command without waiting for it.
	Start(name string, args ...string) error
}

// ExecPlayer drives a command line player such as aplaymidi. Playback is
// stopped by name through a kill command, so any instance of the player
// binary is affected, not only the ones this process started.
type ExecPlayer struct {
	command string
	kill    string
	runner  Runner
}

// Option configures an ExecPlayer.
type Option func(*ExecPlayer)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(p *ExecPlayer) {
		p.runner = r
	}
}

// NewExecPlayer returns a player that runs `command <path>` and stops it
// with `kill <basename of command>`.
func NewExecPlayer(command, kill string, opts ...Option) *ExecPlayer {
	p := &ExecPlayer{
		command: command,
		kill:    kill,
		runner:  execRunner{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stop asks the kill command to end every player process. Failures are
// logged and otherwise ignored.
func (p *ExecPlayer) Stop() error {
	name := filepath.Base(p.command)
	if err := p.runner.Run(p.kill, name); err != nil {
		log.WithError(err).WithField("player", name).Debug("stop failed")
	}
	return nil
}

// Play stops the current playback and starts path without waiting for it.
func (p *ExecPlayer) Play(path string) error {
	_ = p.Stop()
	if err := p.runner.Start(p.command, path); err != nil {
		return errors.NewPlayerError(p.command, err)
	}
	log.WithField("player", p.command).WithField("file", path).Debug("playing")
	return nil
}

// execRunner runs commands detached from the terminal: no stdin, and
// output discarded.
type execRunner struct{}

func (execRunner) Run(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (execRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child when it exits on its own or is killed.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
