package compose

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrorMessages pins the caller-facing message formats. Test
// frameworks assert on these strings, so they are part of the contract.
func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"startup",
			&StartupError{Cause: "port is already allocated"},
			"Failed to start services: port is already allocated",
		},
		{
			"shutdown",
			&ShutdownError{Cause: "permission denied"},
			"Failed to shutdown services: permission denied",
		},
		{
			"build",
			&BuildError{Cause: "dockerfile parse error"},
			"Failed to build services: dockerfile parse error",
		},
		{
			"pull",
			&PullError{Cause: "manifest unknown"},
			"Failed to pull image(s): manifest unknown",
		},
		{
			"kill",
			&KillError{Cause: "no such service: ghost"},
			"Failed to kill services: no such service: ghost",
		},
		{
			"resolution",
			&ResolutionError{Service: "httpd", Cause: "service not running"},
			"Failed to query exposed ports for service httpd: service not running",
		},
		{
			"not exposed",
			&NotExposedError{Service: "httpd", ContainerPort: 8443},
			"Port 8443 is not exposed for service httpd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

// TestErrorPredicates verifies that each Is* predicate matches its own
// kind only, including through fmt.Errorf wrapping.
func TestErrorPredicates(t *testing.T) {
	predicates := map[string]func(error) bool{
		"startup":    IsStartup,
		"shutdown":   IsShutdown,
		"build":      IsBuild,
		"pull":       IsPull,
		"kill":       IsKill,
		"resolution": IsResolution,
		"notExposed": IsNotExposed,
	}

	samples := map[string]error{
		"startup":    &StartupError{Cause: "x"},
		"shutdown":   &ShutdownError{Cause: "x"},
		"build":      &BuildError{Cause: "x"},
		"pull":       &PullError{Cause: "x"},
		"kill":       &KillError{Cause: "x"},
		"resolution": &ResolutionError{Service: "s", Cause: "x"},
		"notExposed": &NotExposedError{Service: "s", ContainerPort: 1},
	}

	for kind, err := range samples {
		wrapped := fmt.Errorf("step failed: %w", err)
		for predKind, pred := range predicates {
			if predKind == kind {
				assert.True(t, pred(err), "%s predicate should match %s", predKind, kind)
				assert.True(t, pred(wrapped), "%s predicate should match wrapped %s", predKind, kind)
			} else {
				assert.False(t, pred(err), "%s predicate should not match %s", predKind, kind)
			}
		}
	}
}

// TestErrorUnwrap verifies that the underlying process error remains
// reachable via errors.Is.
func TestErrorUnwrap(t *testing.T) {
	underlying := errors.New("exit status 17")

	assert.ErrorIs(t, &StartupError{Cause: "x", Err: underlying}, underlying)
	assert.ErrorIs(t, &PullError{Cause: "x", Err: underlying}, underlying)
	assert.ErrorIs(t, &ResolutionError{Service: "s", Cause: "x", Err: underlying}, underlying)
}
