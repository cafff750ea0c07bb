// gateway.go implements in-container host substitution for the resolver.
//
// When the test runner executes inside a Docker container, the host
// address reported by the compose port query (a bind address on the
// Docker host) is not reachable from the runner's own network namespace.
// The reachable address is the gateway of the runner container's
// network, which this file obtains from the Docker Engine API.
package compose

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/docker/docker/client"
)

const (
	// dockerEnvPath exists inside every Docker container and is the
	// conventional marker for "am I running in a container".
	dockerEnvPath = "/.dockerenv"

	// cpusetPath exposes the cgroup path of PID 1, which embeds the
	// container ID when running inside a container.
	cpusetPath = "/proc/1/cpuset"

	// gatewayInspectTimeout bounds the engine API call so a wedged
	// daemon cannot hang a resolution indefinitely.
	gatewayInspectTimeout = 5 * time.Second
)

// gatewayResolver detects whether the current process runs inside a
// container and, if so, resolves the gateway address of that container's
// network via the Docker Engine SDK.
//
// The marker paths are fields so tests can point them at fixtures.
type gatewayResolver struct {
	dockerEnvPath string
	cpusetPath    string
}

func newGatewayResolver() *gatewayResolver {
	return &gatewayResolver{
		dockerEnvPath: dockerEnvPath,
		cpusetPath:    cpusetPath,
	}
}

// insideContainer reports whether the current process appears to run
// inside a Docker container.
func (g *gatewayResolver) insideContainer() bool {
	_, err := os.Stat(g.dockerEnvPath)
	return err == nil
}

// hostAddress returns the gateway address of the current container's
// network, which is the address the Docker host (and its published
// ports) is reachable at from inside the container.
func (g *gatewayResolver) hostAddress(ctx context.Context) (string, error) {
	data, err := os.ReadFile(g.cpusetPath)
	if err != nil {
		return "", fmt.Errorf("failed to determine own container id: %w", err)
	}

	containerID, err := containerIDFromCPUSet(string(data))
	if err != nil {
		return "", err
	}

	// client.FromEnv honors DOCKER_HOST and friends; version negotiation
	// keeps the call compatible across engine versions.
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create Docker client: %w", err)
	}
	defer func() { _ = cli.Close() }()

	inspectCtx, cancel := context.WithTimeout(ctx, gatewayInspectTimeout)
	defer cancel()

	info, err := cli.ContainerInspect(inspectCtx, containerID)
	if err != nil {
		return "", fmt.Errorf("failed to inspect container %q: %w", containerID, err)
	}

	if info.NetworkSettings != nil {
		for _, nw := range info.NetworkSettings.Networks {
			if nw != nil && nw.Gateway != "" {
				return nw.Gateway, nil
			}
		}
	}
	return "", fmt.Errorf("no network gateway found for container %q", containerID)
}

// containerIDFromCPUSet extracts the container ID from the contents of
// /proc/1/cpuset, which looks like "/docker/<64-hex-id>" inside a
// container managed by the Docker engine.
func containerIDFromCPUSet(data string) (string, error) {
	parts := strings.Split(strings.TrimSpace(data), "/")
	if len(parts) < 3 || parts[2] == "" {
		return "", fmt.Errorf("unexpected cpuset path %q: not running inside a Docker container?", strings.TrimSpace(data))
	}
	return parts[2], nil
}
