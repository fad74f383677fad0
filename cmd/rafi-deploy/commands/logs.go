package commands

import (
	"github.com/spf13/cobra"

	"github.com/rafi-ai/rafi-deploy/cmd/rafi-deploy/handlers"
)

// Logs returns the command for fetching a client's container logs.
//
// Optional flags:
//
//	--client: Client identifier (required)
//	--lines, -n: Number of log lines to fetch (default: 100)
func Logs() *cobra.Command {
	var clientID string
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Fetch a client's container logs",
		Long: `Fetch the most recent log lines from a client's assistant container.

Examples:
  # Last 100 lines
  rafi-deploy logs --client jane_doe

  # Last 500 lines
  rafi-deploy logs --client jane_doe -n 500`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Logs(cmd.Context(), clientID, lines)
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client identifier (required)")
	cmd.Flags().IntVarP(&lines, "lines", "n", 100, "Number of log lines to fetch")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}
