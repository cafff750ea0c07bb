package compose

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Protocol is the transport protocol of a published port mapping.
// The compose engine publishes ports per protocol, so a udp-published
// port is invisible to a tcp query and vice versa.
type Protocol string

const (
	// ProtocolTCP is the default protocol for port resolution.
	ProtocolTCP Protocol = "tcp"

	// ProtocolUDP selects udp-published port mappings.
	ProtocolUDP Protocol = "udp"
)

// String returns the string representation of the protocol.
// This method satisfies the fmt.Stringer interface.
func (p Protocol) String() string {
	return string(p)
}

// IsValid checks whether the Protocol value is one of the supported
// transport protocols.
func (p Protocol) IsValid() bool {
	switch p {
	case ProtocolTCP, ProtocolUDP:
		return true
	default:
		return false
	}
}

// ParseProtocol converts a string to a Protocol. An empty string maps to
// ProtocolTCP, matching the default protocol of the compose port command.
// Returns an error if the string names an unsupported protocol.
func ParseProtocol(s string) (Protocol, error) {
	if s == "" {
		return ProtocolTCP, nil
	}
	p := Protocol(strings.ToLower(s))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid protocol: %q (valid: tcp, udp)", s)
	}
	return p, nil
}

// ServiceReference identifies one published port of one compose service.
// It is transient: callers construct a reference per resolution call.
type ServiceReference struct {
	// Service is the service name from the compose file (e.g., "httpd").
	Service string

	// ContainerPort is the port number inside the container (1-65535).
	ContainerPort int

	// Protocol is the transport protocol of the mapping.
	// An empty value defaults to tcp.
	Protocol Protocol
}

// Validate checks that the reference names a service and a container port
// in the valid range, and that the protocol (if set) is supported.
func (r ServiceReference) Validate() error {
	if r.Service == "" {
		return fmt.Errorf("service reference: service name must not be empty")
	}
	if r.ContainerPort < 1 || r.ContainerPort > 65535 {
		return fmt.Errorf("service reference: container port %d out of range (1-65535)", r.ContainerPort)
	}
	if r.Protocol != "" && !r.Protocol.IsValid() {
		return fmt.Errorf("service reference: invalid protocol %q (valid: tcp, udp)", r.Protocol)
	}
	return nil
}

// protocol returns the effective protocol of the reference, applying the
// tcp default for the zero value.
func (r ServiceReference) protocol() Protocol {
	if r.Protocol == "" {
		return ProtocolTCP
	}
	return r.Protocol
}

// ExposedService is the host-side endpoint a published container port is
// reachable at from the test runner. It is an immutable value with no
// identity beyond its fields.
type ExposedService struct {
	// Host is the address the compose engine published the port on.
	// It is reported as-is: it may be a wildcard bind address such as
	// "0.0.0.0" or "::", or a concrete interface address.
	Host string `json:"host"`

	// Port is the host-side port number (1-65535).
	Port int `json:"port"`
}

// Validate checks the ExposedService invariant: a non-empty host string
// and a port in [1, 65535].
func (e ExposedService) Validate() error {
	if e.Host == "" {
		return fmt.Errorf("exposed service: host must not be empty")
	}
	if e.Port < 1 || e.Port > 65535 {
		return fmt.Errorf("exposed service: port %d out of range (1-65535)", e.Port)
	}
	return nil
}

// Address returns the endpoint in "host:port" form suitable for net.Dial.
// IPv6 hosts are bracketed per net.JoinHostPort.
func (e ExposedService) Address() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// String returns a human-readable representation of the endpoint.
func (e ExposedService) String() string {
	return e.Address()
}
