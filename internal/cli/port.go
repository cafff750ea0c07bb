// port.go implements the "composekit port" command: resolve a service's
// published container port to the host endpoint it is reachable at.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/composekit/compose"
)

// NewPortCommand creates the "port" cobra command.
func NewPortCommand() *cobra.Command {
	var (
		protocolFlag string
		gateway      bool
		wait         bool
		waitTimeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "port <service> <container-port>",
		Short: "Resolve a published container port to its host endpoint",
		Long: `Query the compose project for the host-side endpoint a service's
container port is published on, and print it as host:port.

The query is protocol-scoped: a udp-published port is invisible to the
default tcp query and requires --protocol udp.

With --wait the command additionally blocks until the endpoint accepts
connections, which covers the gap between a container running and the
service inside it having bound its port.

Examples:
  composekit -f docker-compose.yml port httpd 80
  composekit -f docker-compose.yml port dns 53 --protocol udp
  composekit -f docker-compose.yml port httpd 80 --wait --wait-timeout 1m`,

		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			containerPort, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid container port %q: %w", args[1], err)
			}

			protocol, err := compose.ParseProtocol(protocolFlag)
			if err != nil {
				return err
			}

			var opts []compose.Option
			if gateway {
				opts = append(opts, compose.WithGatewayResolution())
			}
			session, err := newSession(opts...)
			if err != nil {
				return err
			}

			svc, err := session.ExposedService(cmd.Context(), compose.ServiceReference{
				Service:       args[0],
				ContainerPort: containerPort,
				Protocol:      protocol,
			})
			if err != nil {
				return err
			}

			if wait {
				if err := compose.WaitForService(cmd.Context(), svc, protocol, waitTimeout, 0); err != nil {
					return err
				}
			}

			if !jsonOutput {
				fmt.Println(svc.Address())
			}
			return printResult(map[string]interface{}{
				"service":       args[0],
				"containerPort": containerPort,
				"protocol":      protocol.String(),
				"host":          svc.Host,
				"port":          svc.Port,
			})
		},
	}

	cmd.Flags().StringVar(&protocolFlag, "protocol", "tcp", "Transport protocol of the mapping (tcp or udp)")
	cmd.Flags().BoolVar(&gateway, "gateway", false,
		"When running inside a container, return the container network gateway as the host")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the endpoint accepts connections")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 30*time.Second, "Timeout for --wait")

	return cmd
}
