package cli

import (
	"github.com/spf13/cobra"
)

// StartOptions holds flags for the start command
type StartOptions struct {
	Persist   bool
	Ephemeral bool
}

// NewStartCmd creates the start command
func NewStartCmd(app *App) *cobra.Command {
	opts := StartOptions{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Build if needed and start the portal, then exit",
		Long: `Start performs the guided single start: it checks the runtime, resolves
the session mode, builds the image when missing, and then restarts the
existing container or creates a new one.

The session mode comes from --persist/--ephemeral, then from
ONION_PORTAL_PERSISTENCE, and is asked for interactively otherwise.

Examples:
  onion-portal start                 # Ask whether to keep sessions
  onion-portal start --ephemeral     # Throwaway session
  ONION_PORTAL_PERSISTENCE=yes onion-portal start`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.wire()
			if err != nil {
				return err
			}
			defer s.Close()

			var persist *bool
			switch {
			case opts.Persist:
				persist = boolPtr(true)
			case opts.Ephemeral:
				persist = boolPtr(false)
			}
			return app.runOnce(cmd.Context(), s, persist)
		},
	}

	cmd.Flags().BoolVar(&opts.Persist, "persist", false, "Mount the data directory so sessions survive")
	cmd.Flags().BoolVar(&opts.Ephemeral, "ephemeral", false, "Run without persistence")
	cmd.MarkFlagsMutuallyExclusive("persist", "ephemeral")

	return cmd
}

func boolPtr(v bool) *bool {
	return &v
}
