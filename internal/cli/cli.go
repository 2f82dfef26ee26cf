package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RevCBH/onionportal/internal/config"
	"github.com/RevCBH/onionportal/internal/container"
)

// VersionInfo holds build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Global flags
	verbose    bool
	configPath string
	mode       string

	// I/O, replaceable in tests
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Seams for tests; zero values use the real environment
	getenv   config.Getenv
	baseDir  string
	runner   container.Runner
	lookPath container.LookPathFunc
	exit     func(code int)

	// Version information
	versionInfo VersionInfo
}

// New creates a new CLI application
func New() *App {
	app := &App{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetArgs overrides the command-line arguments, for tests.
func (a *App) SetArgs(args []string) {
	a.rootCmd.SetArgs(args)
}

// SetIO replaces the standard streams.
func (a *App) SetIO(in io.Reader, out, errOut io.Writer) {
	a.stdin = in
	a.stdout = out
	a.stderr = errOut
	a.rootCmd.SetIn(in)
	a.rootCmd.SetOut(out)
	a.rootCmd.SetErr(errOut)
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "onion-portal",
		Short: "Launch and manage the Onion Portal browser container",
		Long: `Onion Portal runs a browser inside a container and exposes it over
HTTP and VNC. Without a subcommand it opens the interactive menu when
attached to a terminal, and performs a single guided start otherwise.

Environment:
  IMAGE_NAME                 image to build and run (default onion_portal)
  CONTAINER_NAME             container name (default onion_portal)
  TOR_BROWSER_CONFIG_DIR     host directory mounted at /config when persisting
  HTTP_PORT, VNC_PORT        host ports (default 5800, 5900)
  ONION_PORTAL_PERSISTENCE   answer for the persistence prompt (yes/no)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoot(cmd.Context())
		},
	}

	// Add persistent flags
	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")
	a.rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to config file (default onion-portal.yaml next to the program)")
	a.rootCmd.Flags().StringVar(&a.mode, "mode", string(ModeAuto),
		"Shell mode: menu, once, or auto")

	a.rootCmd.AddCommand(
		NewStartCmd(a),
		NewStopCmd(a),
		NewConnectCmd(a),
		NewRemoveCmd(a),
		NewListCmd(a),
		NewVersionCmd(a),
	)
}

// reportedError wraps a failure the user has already been told about.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already presented to the user, so
// callers can exit non-zero without printing it again.
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
