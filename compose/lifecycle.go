// lifecycle.go implements the compose project lifecycle operations:
// Up, Down, Build, Pull, and Kill. Each operation is one synchronous
// invocation of the corresponding compose subcommand; flag assembly is
// the only logic this layer adds on top of the external tool.
package compose

import (
	"context"
	"sort"
	"strconv"
	"time"
)

// defaultStopTimeout is the container stop timeout forwarded to compose
// up/down via --timeout when the caller does not override it.
const defaultStopTimeout = 10 * time.Second

// UpOptions controls flag assembly for Up. All fields are forwarded to
// the compose up subcommand. Use DefaultUpOptions as a starting point;
// passing nil to Up is equivalent to DefaultUpOptions().
type UpOptions struct {
	// Timeout is the container shutdown timeout (--timeout), applied by
	// compose when recreating containers. Zero means defaultStopTimeout.
	Timeout time.Duration

	// Services restricts the operation to the named subset of services.
	// All services are started when empty.
	Services []string

	// NoDeps skips linked services (--no-deps).
	NoDeps bool

	// ForceRecreate recreates containers even if their configuration and
	// images are unchanged (--force-recreate).
	ForceRecreate bool

	// AlwaysRecreateDeps recreates dependent containers
	// (--always-recreate-deps). Incompatible with NoRecreate.
	AlwaysRecreateDeps bool

	// NoRecreate keeps existing containers untouched (--no-recreate).
	NoRecreate bool

	// NoBuild never builds an image, even if it is missing (--no-build).
	NoBuild bool

	// NoStart creates the containers without starting them (--no-start).
	NoStart bool

	// Build builds images before starting containers (--build).
	Build bool

	// RenewAnonVolumes recreates anonymous volumes instead of retrieving
	// data from previous containers (--renew-anon-volumes).
	RenewAnonVolumes bool

	// RemoveOrphans removes containers for services not defined in the
	// compose file (--remove-orphans).
	RemoveOrphans bool
}

// DefaultUpOptions returns the Up defaults used for test isolation:
// force-recreate everything, renew anonymous volumes, and remove
// orphans, so each test run starts from a clean slate.
func DefaultUpOptions() *UpOptions {
	return &UpOptions{
		Timeout:            defaultStopTimeout,
		ForceRecreate:      true,
		AlwaysRecreateDeps: true,
		RenewAnonVolumes:   true,
		RemoveOrphans:      true,
	}
}

// Up starts all services of the project, or only opts.Services when set.
// Containers run detached; the call returns once compose has finished
// creating and starting them. A nil opts applies DefaultUpOptions.
//
// Fails with a *StartupError on any non-zero exit, including a named
// service that is absent from the compose file.
func (s *Session) Up(ctx context.Context, opts *UpOptions) error {
	if opts == nil {
		opts = DefaultUpOptions()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultStopTimeout
	}

	args := []string{"up", "--detach", "--timeout", strconv.Itoa(int(timeout.Seconds()))}

	if opts.NoDeps {
		args = append(args, "--no-deps")
	}
	if opts.ForceRecreate {
		args = append(args, "--force-recreate")
	}
	if opts.AlwaysRecreateDeps {
		args = append(args, "--always-recreate-deps")
	}
	if opts.NoRecreate {
		args = append(args, "--no-recreate")
	}
	if opts.NoBuild {
		args = append(args, "--no-build")
	}
	if opts.NoStart {
		args = append(args, "--no-start")
	}
	if opts.Build {
		args = append(args, "--build")
	}
	if opts.RenewAnonVolumes {
		args = append(args, "--renew-anon-volumes")
	}
	if opts.RemoveOrphans {
		args = append(args, "--remove-orphans")
	}
	args = append(args, opts.Services...)

	out, err := s.compose(ctx, args...)
	if err != nil {
		return &StartupError{Cause: causeOf(out, err), Err: err}
	}

	s.log.Info().Strs("services", opts.Services).Msg("services started")
	return nil
}

// DownOptions controls flag assembly for Down.
// Passing nil to Down is equivalent to DefaultDownOptions().
type DownOptions struct {
	// Timeout is the container shutdown timeout (--timeout).
	// Zero means defaultStopTimeout.
	Timeout time.Duration

	// RemoveImages removes images used by the services: "all" for every
	// image, "local" for images without a custom tag (--rmi).
	RemoveImages string

	// Volumes removes named volumes declared in the compose file and
	// anonymous volumes attached to containers (--volumes).
	Volumes bool

	// RemoveOrphans removes containers for services not defined in the
	// compose file (--remove-orphans).
	RemoveOrphans bool
}

// DefaultDownOptions returns the Down defaults used for test teardown:
// volumes and orphans are removed so no state leaks between test runs.
func DefaultDownOptions() *DownOptions {
	return &DownOptions{
		Timeout:       defaultStopTimeout,
		Volumes:       true,
		RemoveOrphans: true,
	}
}

// Down stops and removes all resources of the project. It is idempotent:
// compose exits zero when nothing is running, so Down is safe to call
// unconditionally in teardown, before any Up, and repeatedly.
//
// A nil opts applies DefaultDownOptions. Real failures surface as a
// *ShutdownError.
func (s *Session) Down(ctx context.Context, opts *DownOptions) error {
	if opts == nil {
		opts = DefaultDownOptions()
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultStopTimeout
	}

	args := []string{"down", "--timeout", strconv.Itoa(int(timeout.Seconds()))}

	if opts.RemoveImages != "" {
		args = append(args, "--rmi", opts.RemoveImages)
	}
	if opts.Volumes {
		args = append(args, "--volumes")
	}
	if opts.RemoveOrphans {
		args = append(args, "--remove-orphans")
	}

	out, err := s.compose(ctx, args...)
	if err != nil {
		return &ShutdownError{Cause: causeOf(out, err), Err: err}
	}

	s.log.Info().Msg("services shut down")
	return nil
}

// BuildOptions controls flag assembly for Build.
type BuildOptions struct {
	// Services restricts the build to the named services.
	// All buildable services are built when empty.
	Services []string

	// Args holds build arguments forwarded as --build-arg KEY=VALUE
	// pairs, in deterministic (sorted) key order.
	Args map[string]string

	// NoCache disables the build cache (--no-cache).
	NoCache bool

	// Pull always attempts to pull newer versions of base images (--pull).
	Pull bool
}

// Build builds images for the named services, or all services when the
// options name none. Fails with a *BuildError on non-zero exit.
func (s *Session) Build(ctx context.Context, opts *BuildOptions) error {
	if opts == nil {
		opts = &BuildOptions{}
	}

	args := []string{"build"}

	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	if opts.Pull {
		args = append(args, "--pull")
	}

	// Sort build-arg keys so the assembled command line is reproducible.
	keys := make([]string, 0, len(opts.Args))
	for k := range opts.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--build-arg", k+"="+opts.Args[k])
	}

	args = append(args, opts.Services...)

	out, err := s.compose(ctx, args...)
	if err != nil {
		return &BuildError{Cause: causeOf(out, err), Err: err}
	}

	s.log.Info().Strs("services", opts.Services).Msg("services built")
	return nil
}

// Pull pulls images for the named services, or all services when none
// are named. The services are passed in one compose invocation; the
// compose tool attempts every image and reports failures in aggregate,
// so a partial pull (some images resolved, one not) still fails the
// whole call with a *PullError.
func (s *Session) Pull(ctx context.Context, services ...string) error {
	args := append([]string{"pull"}, services...)

	out, err := s.compose(ctx, args...)
	if err != nil {
		return &PullError{Cause: causeOf(out, err), Err: err}
	}

	s.log.Info().Strs("services", services).Msg("images pulled")
	return nil
}

// KillOptions controls flag assembly for Kill.
type KillOptions struct {
	// Signal is the signal sent to the containers (-s), e.g. "SIGINT".
	// Compose defaults to SIGKILL when empty.
	Signal string
}

// Kill sends a termination signal to the named services' containers.
// Fails with a *KillError when any named service does not exist in the
// compose file, even if the remaining names were valid and running.
func (s *Session) Kill(ctx context.Context, opts *KillOptions, services ...string) error {
	args := []string{"kill"}

	if opts != nil && opts.Signal != "" {
		args = append(args, "-s", opts.Signal)
	}
	args = append(args, services...)

	out, err := s.compose(ctx, args...)
	if err != nil {
		return &KillError{Cause: causeOf(out, err), Err: err}
	}

	s.log.Info().Strs("services", services).Msg("services killed")
	return nil
}
