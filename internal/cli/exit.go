// exit.go maps the compose error taxonomy onto process exit codes.
// Distinct codes let scripts and CI distinguish failure kinds without
// parsing error text.
package cli

import "github.com/mmr-tortoise/composekit/compose"

// ExitCode is the process exit code returned to the OS.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitStartupFailed indicates docker compose up failed.
	ExitStartupFailed ExitCode = 2

	// ExitBuildFailed indicates docker compose build failed.
	ExitBuildFailed ExitCode = 3

	// ExitPullFailed indicates at least one image could not be pulled.
	ExitPullFailed ExitCode = 4

	// ExitKillFailed indicates docker compose kill referenced an unknown
	// service or otherwise failed.
	ExitKillFailed ExitCode = 5

	// ExitResolutionFailed indicates the port introspection query failed.
	ExitResolutionFailed ExitCode = 6

	// ExitPortNotExposed indicates the queried container port/protocol
	// combination is not published to the host.
	ExitPortNotExposed ExitCode = 7
)

// ExitCodeFor translates an error into its exit code based on the
// compose error kind. Unrecognized errors map to ExitGeneralError.
func ExitCodeFor(err error) ExitCode {
	switch {
	case err == nil:
		return ExitSuccess
	case compose.IsStartup(err):
		return ExitStartupFailed
	case compose.IsBuild(err):
		return ExitBuildFailed
	case compose.IsPull(err):
		return ExitPullFailed
	case compose.IsKill(err):
		return ExitKillFailed
	case compose.IsNotExposed(err):
		return ExitPortNotExposed
	case compose.IsResolution(err):
		return ExitResolutionFailed
	default:
		return ExitGeneralError
	}
}
