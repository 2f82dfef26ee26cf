package cli

import (
	"github.com/spf13/cobra"
)

// NewStopCmd creates the stop command
func NewStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the portal container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.wire()
			if err != nil {
				return err
			}
			defer s.Close()

			return policyAbort.handle(s.launcher.Stop(cmd.Context()))
		},
	}
}
