package cli

import (
	"github.com/spf13/cobra"

	"github.com/RevCBH/onionportal/internal/portal"
)

// NewConnectCmd creates the connect command
func NewConnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "connect [name|number]",
		Short: "Restart a stopped container built from the portal image",
		Long: `Connect lists the containers derived from the portal image and starts
the chosen one. The choice is a 1-based number from the list or an exact
container name; without an argument it is asked for interactively.

Examples:
  onion-portal connect               # Pick from a list
  onion-portal connect 2             # Second container in the list
  onion-portal connect onion_portal  # By name`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.wire()
			if err != nil {
				return err
			}
			defer s.Close()

			sel := promptSelector(s)
			if len(args) == 1 {
				sel = portal.FixedSelection(args[0])
			}
			return policyAbort.handle(s.launcher.Connect(cmd.Context(), sel))
		},
	}
}
