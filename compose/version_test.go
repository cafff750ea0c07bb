package compose

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVersion verifies the happy path: the --short output is parsed to
// a bare semantic version matching \d+(\.\d+)*.
func TestVersion(t *testing.T) {
	fake := &fakeRunner{output: "2.27.0\n"}
	session := newTestSession(t, Config{Files: []string{"docker-compose.yml"}}, fake)

	version, err := session.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.27.0", version)
	assert.Regexp(t, regexp.MustCompile(`^\d+(\.\d+)*$`), version)

	call := fake.lastCall(t)
	assert.Equal(t, []string{"compose", "--file", "docker-compose.yml", "version", "--short"}, call.args)
}

// TestVersion_LeadingV verifies tolerance of the "v"-prefixed form some
// tool versions print even with --short.
func TestVersion_LeadingV(t *testing.T) {
	fake := &fakeRunner{output: "v2.24.5\n"}
	session := newTestSession(t, Config{}, fake)

	version, err := session.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.24.5", version)
}

// TestVersion_NoCaching verifies the version is re-queried on every
// call rather than cached on the session.
func TestVersion_NoCaching(t *testing.T) {
	fake := &fakeRunner{output: "2.27.0\n"}
	session := newTestSession(t, Config{}, fake)

	_, err := session.Version(context.Background())
	require.NoError(t, err)
	_, err = session.Version(context.Background())
	require.NoError(t, err)

	assert.Len(t, fake.calls, 2, "each Version call should invoke the tool")
}

// TestVersion_QueryFailure verifies the error when the tool cannot be
// invoked at all (e.g., the compose plugin is not installed).
func TestVersion_QueryFailure(t *testing.T) {
	fake := &fakeRunner{output: "docker: 'compose' is not a docker command\n", err: exitError}
	session := newTestSession(t, Config{}, fake)

	_, err := session.Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not determine docker compose version")
}

// TestVersion_UnparseableOutput verifies the error when the tool exits
// zero but prints nothing that looks like a version.
func TestVersion_UnparseableOutput(t *testing.T) {
	fake := &fakeRunner{output: "unexpected banner\n"}
	session := newTestSession(t, Config{}, fake)

	_, err := session.Version(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not determine docker compose version")
}
