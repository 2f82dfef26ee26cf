package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command
func NewVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := app.versionInfo
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "onion-portal version %s\n", orDefault(info.Version, "dev"))
			fmt.Fprintf(w, "commit: %s\n", orDefault(info.Commit, "unknown"))
			fmt.Fprintf(w, "built: %s\n", orDefault(info.Date, "unknown"))
			return nil
		},
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
