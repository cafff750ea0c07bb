// version.go implements the "composekit version" command: report the
// semantic version of the external docker compose tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the "version" cobra command. Note this
// reports the external compose tool's version; the composekit binary's
// own version is available via the root --version flag.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the docker compose tool version",
		Long: `Query and print the semantic version of the external docker compose
tool. The version is re-queried on every invocation.

Examples:
  composekit version
  composekit --json version`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}

			version, err := session.Version(cmd.Context())
			if err != nil {
				return err
			}

			if !jsonOutput {
				fmt.Println(version)
			}
			return printResult(map[string]interface{}{"version": version})
		},
	}

	return cmd
}
