// errors.go defines the typed error taxonomy for compose operations.
//
// Each lifecycle operation fails with its own error type so that callers
// can branch programmatically (errors.As / the Is* predicates) instead of
// matching message strings. Every type wraps the underlying exec error and
// carries the trimmed combined output of the failed compose invocation as
// its cause, which is what test frameworks want to display on assertion
// failure.
package compose

import (
	"errors"
	"fmt"
)

// StartupError reports a failed Up operation: a named service absent from
// the compose file, a missing image, a host port conflict, and so on.
type StartupError struct {
	// Cause is the trimmed diagnostic output of the compose invocation.
	Cause string

	// Err is the underlying process error, if any.
	Err error
}

// Error satisfies the error interface.
func (e *StartupError) Error() string {
	return "Failed to start services: " + e.Cause
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *StartupError) Unwrap() error { return e.Err }

// ShutdownError reports a failed Down operation. It is never returned for
// "nothing to tear down": the compose tool itself exits zero in that case,
// which keeps Down safe to call unconditionally in test teardown.
type ShutdownError struct {
	Cause string
	Err   error
}

func (e *ShutdownError) Error() string {
	return "Failed to shutdown services: " + e.Cause
}

func (e *ShutdownError) Unwrap() error { return e.Err }

// BuildError reports a failed Build operation for at least one service.
type BuildError struct {
	Cause string
	Err   error
}

func (e *BuildError) Error() string {
	return "Failed to build services: " + e.Cause
}

func (e *BuildError) Unwrap() error { return e.Err }

// PullError reports a failed Pull operation. A partial pull (some images
// resolved, one failed) still fails the whole call.
type PullError struct {
	Cause string
	Err   error
}

func (e *PullError) Error() string {
	return "Failed to pull image(s): " + e.Cause
}

func (e *PullError) Unwrap() error { return e.Err }

// KillError reports a failed Kill operation, typically because at least
// one named service does not exist in the compose file.
type KillError struct {
	Cause string
	Err   error
}

func (e *KillError) Error() string {
	return "Failed to kill services: " + e.Cause
}

func (e *KillError) Unwrap() error { return e.Err }

// ResolutionError reports that the port introspection query itself failed:
// the service is unknown or not running, or the engine is unreachable.
type ResolutionError struct {
	// Service is the service name the query was scoped to.
	Service string

	Cause string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("Failed to query exposed ports for service %s: %s", e.Service, e.Cause)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// NotExposedError reports that the introspection query succeeded but the
// requested container port/protocol combination is not published to the
// host. Querying a udp-published port over tcp (or vice versa) produces
// this error as well, by design of the engine's protocol-scoped publishing.
type NotExposedError struct {
	// Service is the service name the query was scoped to.
	Service string

	// ContainerPort is the container-side port that is not published.
	ContainerPort int
}

func (e *NotExposedError) Error() string {
	return fmt.Sprintf("Port %d is not exposed for service %s", e.ContainerPort, e.Service)
}

// IsStartup returns true if err is (or wraps) a StartupError.
func IsStartup(err error) bool {
	var target *StartupError
	return errors.As(err, &target)
}

// IsShutdown returns true if err is (or wraps) a ShutdownError.
func IsShutdown(err error) bool {
	var target *ShutdownError
	return errors.As(err, &target)
}

// IsBuild returns true if err is (or wraps) a BuildError.
func IsBuild(err error) bool {
	var target *BuildError
	return errors.As(err, &target)
}

// IsPull returns true if err is (or wraps) a PullError.
func IsPull(err error) bool {
	var target *PullError
	return errors.As(err, &target)
}

// IsKill returns true if err is (or wraps) a KillError.
func IsKill(err error) bool {
	var target *KillError
	return errors.As(err, &target)
}

// IsResolution returns true if err is (or wraps) a ResolutionError.
func IsResolution(err error) bool {
	var target *ResolutionError
	return errors.As(err, &target)
}

// IsNotExposed returns true if err is (or wraps) a NotExposedError.
func IsNotExposed(err error) bool {
	var target *NotExposedError
	return errors.As(err, &target)
}
