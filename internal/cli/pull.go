// pull.go implements the "composekit pull" command: pull images for
// named services or for the whole project.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPullCommand creates the "pull" cobra command.
func NewPullCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull [service...]",
		Short: "Pull images for services of the compose project",
		Long: `Pull images for the named services, or for every service when none are
named. A partial pull (some images resolved, one not) fails the whole
command.

Examples:
  composekit -f docker-compose.yml pull
  composekit -f docker-compose.yml pull httpd`,

		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}

			if err := session.Pull(cmd.Context(), args...); err != nil {
				return err
			}

			if !jsonOutput {
				fmt.Println("Images pulled")
			}
			return printResult(map[string]interface{}{"action": "pull", "services": args})
		},
	}

	return cmd
}
