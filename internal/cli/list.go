package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/RevCBH/onionportal/internal/portal"
)

// NewListCmd creates the list command
func NewListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List containers built from the portal image",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.wire()
			if err != nil {
				return err
			}
			defer s.Close()

			statuses, err := s.launcher.List(cmd.Context())
			if err != nil {
				// A missing runtime was already reported by the launcher
				if errors.Is(err, portal.ErrQueryFailed) {
					s.report.Error(fmt.Sprintf("Could not list containers: %v", err))
				}
				return policyAbort.handle(err)
			}
			if len(statuses) == 0 {
				s.report.Info(fmt.Sprintf("No containers found for image %s.", s.cfg.ImageName))
				return nil
			}

			renderStatusTable(app.stdout, statuses, isTerminal(app.stdout))
			return nil
		},
	}
}

// renderStatusTable prints statuses as a numbered table. The numbers match
// the ones accepted by connect.
func renderStatusTable(w io.Writer, statuses []portal.ContainerStatus, color bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "CONTAINER", "STATE"})

	for i, st := range statuses {
		state := "stopped"
		if st.Running {
			state = "running"
		}
		if color {
			if st.Running {
				state = text.FgGreen.Sprint(state)
			} else {
				state = text.FgYellow.Sprint(state)
			}
		}
		t.AppendRow(table.Row{i + 1, st.Name, state})
	}

	t.Render()
}
