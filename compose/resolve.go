// resolve.go implements the service resolver: mapping a declared service,
// container port, and protocol to the host-side endpoint it is published
// on, via the compose port introspection subcommand.
package compose

import (
	"context"
	"strconv"
	"strings"
)

// ExposedService resolves the host-side endpoint of a published
// container port. The state is queried from the external engine on
// every call; nothing is cached between calls.
//
// Failure modes:
//   - the introspection query itself fails (service unknown or not
//     running, engine unreachable): *ResolutionError
//   - the query succeeds but the container port/protocol combination is
//     not published to the host: *NotExposedError
//
// The protocol defaults to tcp. A udp-published port is invisible to a
// tcp query and vice versa; that is the engine's protocol-scoped
// publishing model passed through, not resolved away here.
func (s *Session) ExposedService(ctx context.Context, ref ServiceReference) (ExposedService, error) {
	if err := ref.Validate(); err != nil {
		return ExposedService{}, err
	}

	args := []string{"port"}
	if ref.protocol() != ProtocolTCP {
		args = append(args, "--protocol", ref.protocol().String())
	}
	args = append(args, ref.Service, strconv.Itoa(ref.ContainerPort))

	out, err := s.compose(ctx, args...)
	if err != nil {
		return ExposedService{}, &ResolutionError{
			Service: ref.Service,
			Cause:   causeOf(out, err),
			Err:     err,
		}
	}

	svc, err := parsePortOutput(string(out), ref)
	if err != nil {
		return ExposedService{}, err
	}

	// When the test runner itself runs inside a container, the address
	// reported by the engine is only reachable from the Docker host.
	// Substitute the container's network gateway so the endpoint is
	// reachable from here.
	if s.gateway != nil && s.gateway.insideContainer() {
		host, gerr := s.gateway.hostAddress(ctx)
		if gerr != nil {
			return ExposedService{}, &ResolutionError{
				Service: ref.Service,
				Cause:   gerr.Error(),
				Err:     gerr,
			}
		}
		svc.Host = host
	}

	s.log.Debug().
		Str("service", ref.Service).
		Int("containerPort", ref.ContainerPort).
		Str("protocol", ref.protocol().String()).
		Str("host", svc.Host).
		Int("hostPort", svc.Port).
		Msg("resolved exposed service")

	return svc, nil
}

// parsePortOutput parses the output of the compose port subcommand into
// an ExposedService.
//
// The output is a "host:port" line, e.g. "0.0.0.0:32768". When a port is
// published on both address families compose prints one line per
// mapping; the first line is used. IPv6 hosts appear bracketed
// ("[::]:32768") or bare ("':::32768'" from older tool versions), both
// of which normalize to "::".
func parsePortOutput(out string, ref ServiceReference) (ExposedService, error) {
	line := firstLine(out)
	if line == "" {
		return ExposedService{}, &NotExposedError{Service: ref.Service, ContainerPort: ref.ContainerPort}
	}

	idx := strings.LastIndex(line, ":")
	if idx < 0 {
		// No host:port separator at all. The tool answered but reported
		// no mapping, which means the port is not published.
		return ExposedService{}, &NotExposedError{Service: ref.Service, ContainerPort: ref.ContainerPort}
	}

	host := strings.Trim(line[:idx], "[]")
	if host == "" {
		// A bare ":port" output means the engine's default bind address.
		host = "0.0.0.0"
	}

	port, err := strconv.Atoi(line[idx+1:])
	if err != nil || port > 65535 {
		return ExposedService{}, &ResolutionError{
			Service: ref.Service,
			Cause:   "unexpected port output " + strconv.Quote(line),
			Err:     err,
		}
	}
	if port < 1 {
		// Some tool versions print ":0" for an unpublished port instead
		// of an empty result.
		return ExposedService{}, &NotExposedError{Service: ref.Service, ContainerPort: ref.ContainerPort}
	}

	return ExposedService{Host: host, Port: port}, nil
}

// firstLine returns the first non-empty line of s, trimmed.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
