package compose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runnerCall records one invocation the fake runner received, so tests
// can assert on the exact command line the session assembled.
type runnerCall struct {
	dir  string
	env  map[string]string
	name string
	args []string
}

// fakeRunner is a Runner that records calls and returns canned output.
// It stands in for the external docker binary so the full command
// assembly and output parsing paths run without a Docker daemon.
type fakeRunner struct {
	calls  []runnerCall
	output string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir string, env map[string]string, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, runnerCall{dir: dir, env: env, name: name, args: args})
	return []byte(f.output), f.err
}

// lastCall returns the most recent invocation, failing the test if the
// runner was never called.
func (f *fakeRunner) lastCall(t *testing.T) runnerCall {
	t.Helper()
	require.NotEmpty(t, f.calls, "runner should have been invoked")
	return f.calls[len(f.calls)-1]
}

// exitError simulates the non-zero-exit error os/exec would return.
var exitError = errors.New("exit status 1")

// newTestSession builds a session wired to a fresh fake runner.
func newTestSession(t *testing.T, cfg Config, fake *fakeRunner) *Session {
	t.Helper()
	session, err := NewSession(cfg, WithRunner(fake))
	require.NoError(t, err)
	return session
}

// TestNewSession_Defaults verifies that the project directory defaults
// to the directory of the first compose file.
func TestNewSession_Defaults(t *testing.T) {
	session, err := NewSession(Config{
		Files:       []string{"deploy/docker-compose.yml"},
		ProjectName: "suite-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "deploy", session.ProjectDirectory())
	assert.Equal(t, "suite-1", session.ProjectName())
}

// TestNewSession_NoFiles verifies the zero-value config is usable:
// compose then discovers its default file in the current directory.
func TestNewSession_NoFiles(t *testing.T) {
	session, err := NewSession(Config{})
	require.NoError(t, err)

	assert.Equal(t, ".", session.ProjectDirectory())
	assert.Empty(t, session.ProjectName())
}

// TestNewSession_EmptyFilePath verifies that a blank compose file path
// is rejected at construction time rather than surfacing as a confusing
// compose CLI error later.
func TestNewSession_EmptyFilePath(t *testing.T) {
	_, err := NewSession(Config{Files: []string{"docker-compose.yml", "  "}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty compose file path")
}

// TestSession_BaseArgs verifies that every invocation carries the
// compose subcommand, the project name, and one --file flag per
// configured compose file, in order.
func TestSession_BaseArgs(t *testing.T) {
	fake := &fakeRunner{}
	session := newTestSession(t, Config{
		Files:       []string{"a.yml", "b.yml"},
		ProjectName: "proj",
	}, fake)

	require.NoError(t, session.Pull(context.Background()))

	call := fake.lastCall(t)
	assert.Equal(t, "docker", call.name)
	assert.Equal(t,
		[]string{"compose", "--project-name", "proj", "--file", "a.yml", "--file", "b.yml", "pull"},
		call.args)
}

// TestSession_RunnerContext verifies that the project directory and the
// extra environment reach the runner on every invocation.
func TestSession_RunnerContext(t *testing.T) {
	fake := &fakeRunner{}
	session := newTestSession(t, Config{
		Files:            []string{"docker-compose.yml"},
		ProjectDirectory: "/srv/fixtures",
		Env:              map[string]string{"TAG": "test"},
	}, fake)

	require.NoError(t, session.Pull(context.Background()))

	call := fake.lastCall(t)
	assert.Equal(t, "/srv/fixtures", call.dir)
	assert.Equal(t, map[string]string{"TAG": "test"}, call.env)
}

// TestCauseOf verifies the diagnostic extraction rules: prefer the
// trimmed process output, fall back to the process error.
func TestCauseOf(t *testing.T) {
	assert.Equal(t, "no such service: foo", causeOf([]byte("no such service: foo\n"), exitError))
	assert.Equal(t, "exit status 1", causeOf(nil, exitError))
	assert.Equal(t, "exit status 1", causeOf([]byte("  \n"), exitError))
	assert.Equal(t, "", causeOf(nil, nil))
}
