// Package cli implements the cobra-based CLI commands for composekit.
//
// Each subcommand (up, down, build, pull, kill, version, port) is defined
// in its own file within this package and maps one-to-one onto a compose
// session operation. This file defines the root command, the global flags
// describing the session context, and the error-to-exit-code handling.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/composekit/compose"
)

// Global flag variables shared across all subcommands. They are bound to
// cobra persistent flags on the root command, which makes them available
// to every subcommand automatically.
var (
	// composeFiles holds the compose file paths (-f/--file, repeatable).
	composeFiles []string

	// projectName is the compose project name (-p/--project-name).
	projectName string

	// projectDirectory is the working directory for compose invocations.
	projectDirectory string

	// configPath points at a session descriptor file (--config); flags
	// override whatever the descriptor sets.
	configPath string

	// jsonOutput switches command output to JSON for machine consumption.
	jsonOutput bool

	// verbose enables debug-level invocation tracing on stderr.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package for --version output.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// The root command performs no action itself; functionality lives in
// the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "composekit",
		Short: "docker compose lifecycle and port resolution for test automation",
		Long: `composekit drives the docker compose CLI for test automation: bring a
compose project up and down around a test, build/pull/kill its services,
and resolve a service's published container port to the host endpoint it
is reachable at.

Every command is a single synchronous docker compose invocation scoped to
the session described by --file/--project-name/--project-directory or a
--config descriptor.`,

		// Errors are formatted by Execute (text or JSON), so cobra's own
		// usage/error printing is silenced.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().StringSliceVarP(&composeFiles, "file", "f", nil,
		"Compose file path (repeatable; merged in order)")
	rootCmd.PersistentFlags().StringVarP(&projectName, "project-name", "p", "",
		"Compose project name")
	rootCmd.PersistentFlags().StringVar(&projectDirectory, "project-directory", "",
		"Working directory for compose invocations (default: directory of the first compose file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Session descriptor file (.yaml/.yml/.json/.jsonc); flags override its values")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewUpCommand())
	rootCmd.AddCommand(NewDownCommand())
	rootCmd.AddCommand(NewBuildCommand())
	rootCmd.AddCommand(NewPullCommand())
	rootCmd.AddCommand(NewKillCommand())
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewPortCommand())

	return rootCmd
}

// newSession builds the compose session from the global flags, layering
// them over the --config descriptor when one is given.
func newSession(opts ...compose.Option) (*compose.Session, error) {
	var cfg compose.Config

	if configPath != "" {
		loaded, err := compose.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags take precedence over the descriptor.
	if len(composeFiles) > 0 {
		cfg.Files = composeFiles
	}
	if projectName != "" {
		cfg.ProjectName = projectName
	}
	if projectDirectory != "" {
		cfg.ProjectDirectory = projectDirectory
	}

	opts = append(opts, compose.WithLogger(newLogger()))
	return compose.NewSession(cfg, opts...)
}

// newLogger builds the session logger: a console writer at debug level
// under --verbose, a no-op logger otherwise. Log output goes to stderr
// so stdout stays reserved for command results.
func newLogger() zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.DebugLevel)
}

// Execute runs the root command and translates errors into process exit
// codes via ExitCodeFor, so scripts and CI can branch on the outcome.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(int(ExitCodeFor(err)))
	}
}

// printError outputs an error in the format selected by --json.
func printError(err error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
			},
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
	}
}
