package compose

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContainerIDFromCPUSet verifies extraction of the container ID
// from the cgroup path PID 1 reports inside a Docker container.
func TestContainerIDFromCPUSet(t *testing.T) {
	id, err := containerIDFromCPUSet("/docker/8f0c2d3a41b5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f\n")
	require.NoError(t, err)
	assert.Equal(t, "8f0c2d3a41b5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f", id)
}

// TestContainerIDFromCPUSet_NotInContainer verifies the error for the
// "/" cgroup path seen on a plain host.
func TestContainerIDFromCPUSet_NotInContainer(t *testing.T) {
	for _, data := range []string{"/\n", "", "/docker/\n"} {
		_, err := containerIDFromCPUSet(data)
		require.Error(t, err, "cpuset %q should not yield a container id", data)
		assert.Contains(t, err.Error(), "unexpected cpuset path")
	}
}

// TestGatewayResolver_InsideContainer verifies container detection via
// the /.dockerenv marker, using a fixture path instead of the real one.
func TestGatewayResolver_InsideContainer(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, ".dockerenv")

	g := &gatewayResolver{dockerEnvPath: marker}
	assert.False(t, g.insideContainer(), "marker absent: not inside a container")

	require.NoError(t, os.WriteFile(marker, nil, 0o644))
	assert.True(t, g.insideContainer(), "marker present: inside a container")
}

// TestGatewayResolver_Disabled verifies that sessions without
// WithGatewayResolution never consult the resolver, so host addresses
// pass through exactly as the engine reported them.
func TestGatewayResolver_Disabled(t *testing.T) {
	fake := &fakeRunner{output: "0.0.0.0:32768\n"}
	session := newTestSession(t, Config{Files: []string{"docker-compose.yml"}}, fake)

	require.Nil(t, session.gateway)
}
