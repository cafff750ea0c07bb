// runner.go abstracts external process execution behind the Runner
// interface. The Session uses a Runner for every compose invocation,
// which keeps the command-assembly and output-parsing logic testable
// without a Docker daemon on the test machine.
package compose

import (
	"context"
	"os"
	"os/exec"
)

// Runner executes one external command and returns its combined
// stdout/stderr output. Implementations must block until the process
// terminates; no operation in this package streams partial progress.
type Runner interface {
	// Run executes name with args in dir, with env merged on top of the
	// current process environment. It returns the combined output and a
	// non-nil error when the process exits non-zero or cannot be started.
	Run(ctx context.Context, dir string, env map[string]string, name string, args ...string) ([]byte, error)
}

// execRunner is the default Runner backed by os/exec. It is stateless
// and safe for reuse across sessions.
type execRunner struct{}

// NewExecRunner returns the default Runner that spawns real processes
// via os/exec. Sessions use it unless WithRunner overrides it.
func NewExecRunner() Runner {
	return execRunner{}
}

// Run executes the command with exec.CommandContext so a cancelled
// context kills the child process. Stdout and stderr are captured
// together because compose writes diagnostics to both streams and the
// error messages surfaced to callers need the full picture.
func (execRunner) Run(ctx context.Context, dir string, env map[string]string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	// Relative paths in compose files resolve against the working
	// directory, so it must be the project directory.
	cmd.Dir = dir

	// Inherit the current environment and layer session variables on top.
	// os.Environ returns a copy, so this never mutates our own process.
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	return cmd.CombinedOutput()
}
