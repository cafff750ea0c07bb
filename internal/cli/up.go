// up.go implements the "composekit up" command: start all services of
// the session's compose project, or only the named subset.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/composekit/compose"
)

// NewUpCommand creates the "up" cobra command.
func NewUpCommand() *cobra.Command {
	opts := compose.DefaultUpOptions()
	var timeoutSec int

	cmd := &cobra.Command{
		Use:   "up [service...]",
		Short: "Start services of the compose project",
		Long: `Start all services of the compose project, or only the named subset.
Containers run detached; the command returns once compose has finished
creating and starting them.

By default containers are force-recreated with fresh anonymous volumes
and orphans removed, so each run starts from a clean slate.

Examples:
  composekit -f docker-compose.yml up
  composekit -f docker-compose.yml up httpd redis`,

		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}

			opts.Timeout = time.Duration(timeoutSec) * time.Second
			opts.Services = args

			if err := session.Up(cmd.Context(), opts); err != nil {
				return err
			}

			if !jsonOutput {
				fmt.Println("Services started")
			}
			return printResult(map[string]interface{}{"action": "up", "services": args})
		},
	}

	cmd.Flags().IntVar(&timeoutSec, "timeout", 10, "Container shutdown timeout in seconds")
	cmd.Flags().BoolVar(&opts.NoDeps, "no-deps", false, "Don't start linked services")
	cmd.Flags().BoolVar(&opts.ForceRecreate, "force-recreate", true,
		"Recreate containers even if their configuration and images haven't changed")
	cmd.Flags().BoolVar(&opts.AlwaysRecreateDeps, "always-recreate-deps", true,
		"Recreate dependent containers")
	cmd.Flags().BoolVar(&opts.NoRecreate, "no-recreate", false,
		"If containers already exist, don't recreate them")
	cmd.Flags().BoolVar(&opts.NoBuild, "no-build", false, "Don't build an image, even if it's missing")
	cmd.Flags().BoolVar(&opts.NoStart, "no-start", false, "Don't start the services after creating them")
	cmd.Flags().BoolVar(&opts.Build, "build", false, "Build images before starting containers")
	cmd.Flags().BoolVar(&opts.RenewAnonVolumes, "renew-anon-volumes", true,
		"Recreate anonymous volumes instead of retrieving data from previous containers")
	cmd.Flags().BoolVar(&opts.RemoveOrphans, "remove-orphans", true,
		"Remove containers for services not defined in the compose file")

	return cmd
}
