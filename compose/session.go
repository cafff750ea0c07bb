// session.go defines the Session, the explicit per-test handle on one
// compose project. All state for an invocation context (compose files,
// project name, project directory, extra environment) lives on the
// Session rather than in package globals, so multiple independent
// projects can coexist in one process.
package compose

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// dockerBinary is the external binary every operation shells out to.
// Compose is invoked as the plugin subcommand ("docker compose"), not
// the legacy standalone docker-compose binary.
const dockerBinary = "docker"

// Config describes the compose invocation context of a Session.
// The zero value is usable: compose then discovers its default
// docker-compose.yml in the project directory.
type Config struct {
	// Files is the ordered list of compose file paths. Each file is
	// passed with its own --file flag; compose merges them in order,
	// with later files overriding earlier ones.
	Files []string `yaml:"files" json:"files"`

	// ProjectName is the compose project name. Compose uses it to prefix
	// container, network, and volume names, isolating this session from
	// other projects on the same engine. When empty, compose derives a
	// name from the project directory.
	ProjectName string `yaml:"projectName" json:"projectName"`

	// ProjectDirectory is the working directory for every compose
	// invocation. When empty it defaults to the directory of the first
	// compose file, or "." if no files are configured.
	ProjectDirectory string `yaml:"projectDirectory" json:"projectDirectory"`

	// Env holds extra environment variables passed to every compose
	// invocation, on top of the current process environment. Useful for
	// variable substitution in compose files.
	Env map[string]string `yaml:"env" json:"env"`
}

// Session owns the lifecycle of one compose project for the duration of
// a test: Up at setup, Down at teardown, with Build/Pull/Kill/Version and
// port resolution in between.
//
// A Session assumes sequential use within a single test lifecycle. It
// performs no internal locking, no caching, and no retries: every call
// spawns one external process and blocks until it terminates.
type Session struct {
	files       []string
	projectName string
	projectDir  string
	env         map[string]string

	runner  Runner
	gateway *gatewayResolver
	log     zerolog.Logger
}

// Option customizes a Session at construction time.
type Option func(*Session)

// WithRunner replaces the default exec-backed Runner. Tests use this to
// substitute a fake that records invocations and returns canned output.
func WithRunner(r Runner) Option {
	return func(s *Session) { s.runner = r }
}

// WithLogger sets the structured logger used to trace compose
// invocations. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithGatewayResolution enables in-container host substitution: when the
// test runner itself executes inside a container, the host address
// reported by the engine (typically a loopback or wildcard bind on the
// Docker host) is unreachable, and the container's network gateway
// address is returned instead.
func WithGatewayResolution() Option {
	return func(s *Session) { s.gateway = newGatewayResolver() }
}

// NewSession creates a Session for the given invocation context.
// It validates the configuration but spawns no process; the external
// engine is first contacted by the lifecycle operations.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	for _, f := range cfg.Files {
		if strings.TrimSpace(f) == "" {
			return nil, fmt.Errorf("compose session: empty compose file path")
		}
	}

	projectDir := cfg.ProjectDirectory
	if projectDir == "" {
		if len(cfg.Files) > 0 {
			projectDir = filepath.Dir(cfg.Files[0])
		} else {
			projectDir = "."
		}
	}

	s := &Session{
		files:       append([]string(nil), cfg.Files...),
		projectName: cfg.ProjectName,
		projectDir:  projectDir,
		env:         cfg.Env,
		runner:      NewExecRunner(),
		log:         zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log.Info().
		Str("project", s.projectName).
		Strs("files", s.files).
		Str("dir", s.projectDir).
		Msg("compose session initialized")

	return s, nil
}

// ProjectName returns the configured compose project name, which may be
// empty when compose derives the name from the project directory.
func (s *Session) ProjectName() string {
	return s.projectName
}

// ProjectDirectory returns the working directory of compose invocations.
func (s *Session) ProjectDirectory() string {
	return s.projectDir
}

// baseArgs assembles the arguments common to every compose invocation:
// the "compose" plugin subcommand, the project name, and one --file flag
// per configured compose file.
func (s *Session) baseArgs() []string {
	args := make([]string, 0, len(s.files)*2+3)
	args = append(args, "compose")
	if s.projectName != "" {
		args = append(args, "--project-name", s.projectName)
	}
	for _, f := range s.files {
		args = append(args, "--file", f)
	}
	return args
}

// compose runs one compose subcommand with the session context and
// returns its combined output. The error, if any, is the raw process
// error; callers wrap it into the operation-specific error type.
func (s *Session) compose(ctx context.Context, args ...string) ([]byte, error) {
	full := append(s.baseArgs(), args...)

	s.log.Debug().
		Str("binary", dockerBinary).
		Strs("args", full).
		Msg("invoking compose")

	out, err := s.runner.Run(ctx, s.projectDir, s.env, dockerBinary, full...)
	if err != nil {
		s.log.Debug().
			Err(err).
			Str("output", strings.TrimSpace(string(out))).
			Msg("compose invocation failed")
	}
	return out, err
}

// causeOf extracts the diagnostic cause of a failed invocation: the
// trimmed combined output when the process produced any, otherwise the
// process error itself (e.g., binary not found).
func causeOf(out []byte, err error) string {
	cause := strings.TrimSpace(string(out))
	if cause == "" && err != nil {
		cause = err.Error()
	}
	return cause
}
