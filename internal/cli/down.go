// down.go implements the "composekit down" command: stop and remove all
// resources of the session's compose project.
//
// Down is the teardown half of the session lifecycle and is safe to run
// unconditionally: when nothing is running it still succeeds, so test
// suites can call it in teardown regardless of what the test body did.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/composekit/compose"
)

// NewDownCommand creates the "down" cobra command.
func NewDownCommand() *cobra.Command {
	opts := compose.DefaultDownOptions()
	var timeoutSec int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Stop and remove all resources of the compose project",
		Long: `Stop and remove containers, networks, and volumes created by up.

Volumes and orphan containers are removed by default to keep the test
environment clean. The command is idempotent: running it with nothing
up succeeds.

Examples:
  composekit -f docker-compose.yml down
  composekit -f docker-compose.yml down --rmi local`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}

			opts.Timeout = time.Duration(timeoutSec) * time.Second

			if err := session.Down(cmd.Context(), opts); err != nil {
				return err
			}

			if !jsonOutput {
				fmt.Println("Services shut down")
			}
			return printResult(map[string]interface{}{"action": "down"})
		},
	}

	cmd.Flags().IntVar(&timeoutSec, "timeout", 10, "Container shutdown timeout in seconds")
	cmd.Flags().StringVar(&opts.RemoveImages, "rmi", "",
		"Remove images: 'all' for every image, 'local' for untagged images only")
	cmd.Flags().BoolVar(&opts.Volumes, "volumes", true,
		"Remove named volumes declared in the compose file and anonymous volumes")
	cmd.Flags().BoolVar(&opts.RemoveOrphans, "remove-orphans", true,
		"Remove containers for services not defined in the compose file")

	return cmd
}
