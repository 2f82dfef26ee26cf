package cli

import (
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command
func NewRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Force-remove every container built from the portal image",
		Long: `Remove deletes each container derived from the portal image, running or
not. Every container is attempted; the command fails if any removal failed.
The data directory on the host is left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.wire()
			if err != nil {
				return err
			}
			defer s.Close()

			return policyAbort.handle(s.launcher.RemoveAll(cmd.Context()))
		},
	}
}
