package player

import (
	"fmt"
	"testing"

	"midic/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	wait bool
	name string
	args []string
}

type recordingRunner struct {
	calls    []call
	runErr   error
	startErr error
}

func (r *recordingRunner) Run(name string, args ...string) error {
	r.calls = append(r.calls, call{wait: true, name: name, args: args})
	return r.runErr
}

func (r *recordingRunner) Start(name string, args ...string) error {
	r.calls = append(r.calls, call{name: name, args: args})
	return r.startErr
}

func TestStop(t *testing.T) {
	r := &recordingRunner{}
	p := NewExecPlayer("/usr/bin/aplaymidi", "killall", WithRunner(r))

	require.NoError(t, p.Stop())
	require.Len(t, r.calls, 1)
	assert.Equal(t, call{wait: true, name: "killall", args: []string{"aplaymidi"}}, r.calls[0])
}

func TestStopIgnoresKillFailure(t *testing.T) {
	r := &recordingRunner{runErr: fmt.Errorf("aplaymidi: no process found")}
	p := NewExecPlayer("aplaymidi", "killall", WithRunner(r))

	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop(), "stop is idempotent")
	assert.Len(t, r.calls, 2)
}

func TestPlayStopsThenStarts(t *testing.T) {
	r := &recordingRunner{}
	p := NewExecPlayer("aplaymidi", "killall", WithRunner(r))

	require.NoError(t, p.Play("/music/a.mid"))
	require.NoError(t, p.Play("/music/b.mid"))

	assert.Equal(t, []call{
		{wait: true, name: "killall", args: []string{"aplaymidi"}},
		{name: "aplaymidi", args: []string{"/music/a.mid"}},
		{wait: true, name: "killall", args: []string{"aplaymidi"}},
		{name: "aplaymidi", args: []string{"/music/b.mid"}},
	}, r.calls)
}

func TestPlayPassesPathAsSingleArgument(t *testing.T) {
	r := &recordingRunner{}
	p := NewExecPlayer("aplaymidi", "killall", WithRunner(r))

	require.NoError(t, p.Play(`/music/my "best" song.mid`))
	assert.Equal(t, []string{`/music/my "best" song.mid`}, r.calls[1].args)
}

func TestPlayStartFailure(t *testing.T) {
	r := &recordingRunner{startErr: fmt.Errorf("executable file not found in $PATH")}
	p := NewExecPlayer("aplaymidi", "killall", WithRunner(r))

	err := p.Play("a.mid")
	require.Error(t, err)
	assert.True(t, errors.IsPlayerError(err))

	assert.Equal(t, errors.PlayerStartFailed, errors.KindOf(err))
	assert.Equal(t, "cannot start player: aplaymidi: executable file not found in $PATH", err.Error())
}

func TestExecRunner(t *testing.T) {
	var r execRunner
	assert.NoError(t, r.Run("true"))
	assert.Error(t, r.Run("false"))
	assert.NoError(t, r.Start("true"))
	assert.Error(t, r.Start("midic-test-no-such-binary"))
}

func TestExecPlayerMissingBinary(t *testing.T) {
	p := NewExecPlayer("midic-test-no-such-binary", "true")
	assert.NoError(t, p.Stop())
	assert.True(t, errors.IsPlayerError(p.Play("a.mid")))
}
