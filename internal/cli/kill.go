// kill.go implements the "composekit kill" command: send a termination
// signal to the named services' containers.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/composekit/compose"
)

// NewKillCommand creates the "kill" cobra command.
func NewKillCommand() *cobra.Command {
	opts := &compose.KillOptions{}

	cmd := &cobra.Command{
		Use:   "kill <service>...",
		Short: "Send a termination signal to services' containers",
		Long: `Send a termination signal (SIGKILL by default) to the named services'
containers. Fails when any named service does not exist in the compose
file, even if the others were valid and running.

Examples:
  composekit -f docker-compose.yml kill httpd
  composekit -f docker-compose.yml kill -s SIGINT worker`,

		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession()
			if err != nil {
				return err
			}

			if err := session.Kill(cmd.Context(), opts, args...); err != nil {
				return err
			}

			if !jsonOutput {
				fmt.Println("Services killed")
			}
			return printResult(map[string]interface{}{"action": "kill", "services": args})
		},
	}

	cmd.Flags().StringVarP(&opts.Signal, "signal", "s", "",
		"Signal to send to the containers (default: SIGKILL)")

	return cmd
}
