// wait.go provides a readiness probe for resolved endpoints. Compose
// returns from up as soon as containers are running, which is usually
// before the service inside has bound its port; tests typically resolve
// the endpoint and then wait for it to accept connections.
package compose

import (
	"context"
	"fmt"
	"net"
	"time"
)

const (
	// defaultWaitTimeout bounds WaitForService when the caller passes a
	// zero timeout.
	defaultWaitTimeout = 30 * time.Second

	// defaultPollInterval is the delay between connection attempts.
	defaultPollInterval = 100 * time.Millisecond

	// dialAttemptTimeout bounds each individual connection attempt.
	dialAttemptTimeout = time.Second
)

// WaitForService blocks until the endpoint accepts a connection, the
// timeout lapses, or the context is cancelled. A zero timeout applies
// defaultWaitTimeout; a zero interval applies defaultPollInterval.
//
// For udp the probe only verifies that a local socket towards the
// endpoint can be opened: udp is connectionless, so a successful dial
// does not prove a listener is present. Tcp probes are authoritative.
func WaitForService(ctx context.Context, svc ExposedService, protocol Protocol, timeout, interval time.Duration) error {
	if err := svc.Validate(); err != nil {
		return err
	}
	if protocol == "" {
		protocol = ProtocolTCP
	}
	if !protocol.IsValid() {
		return fmt.Errorf("wait for service: invalid protocol %q (valid: tcp, udp)", protocol)
	}
	if timeout == 0 {
		timeout = defaultWaitTimeout
	}
	if interval == 0 {
		interval = defaultPollInterval
	}

	deadline := time.Now().Add(timeout)
	addr := svc.Address()

	for {
		conn, err := net.DialTimeout(protocol.String(), addr, dialAttemptTimeout)
		if err == nil {
			_ = conn.Close()
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("service at %s did not accept %s connections within %s: %w",
				addr, protocol, timeout, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
