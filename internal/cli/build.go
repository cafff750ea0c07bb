// build.go implements the "composekit build" command: build images for
// named services or for the whole project.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/composekit/compose"
)

// NewBuildCommand creates the "build" cobra command.
func NewBuildCommand() *cobra.Command {
	opts := &compose.BuildOptions{}

	cmd := &cobra.Command{
		Use:   "build [service...]",
		Short: "Build images for services of the compose project",
		Long: `Build images for the named services, or for every buildable service
when none are named. Build arguments are forwarded as --build-arg pairs.

Examples:
  composekit -f docker-compose.yml build
  composekit -f docker-compose.yml build --build-arg VERSION=1.2.3 app`,

		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}

			opts.Services = args

			if err := session.Build(cmd.Context(), opts); err != nil {
				return err
			}

			if !jsonOutput {
				fmt.Println("Services built")
			}
			return printResult(map[string]interface{}{"action": "build", "services": args})
		},
	}

	cmd.Flags().StringToStringVar(&opts.Args, "build-arg", nil,
		"Build argument as KEY=VALUE (repeatable)")
	cmd.Flags().BoolVar(&opts.NoCache, "no-cache", false, "Do not use cache when building images")
	cmd.Flags().BoolVar(&opts.Pull, "pull", false, "Always attempt to pull newer versions of base images")

	return cmd
}
