// Package compose drives the `docker compose` plugin CLI for test
// automation. It manages the lifecycle of one compose project per Session
// (up, down, build, pull, kill, version) and resolves published service
// ports to host-side endpoints reachable from the test runner.
//
// The package is deliberately thin: every operation is one synchronous
// subprocess invocation of the external compose tool, with light parsing
// of its textual output. Container runtime, image building, networking,
// and compose-file semantics remain fully delegated to the external tool.
//
// All external process execution goes through the Runner interface, which
// makes every code path testable without a Docker daemon.
package compose
