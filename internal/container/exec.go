package container

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// CommandResult is the outcome of one external invocation.
// A non-zero ExitCode is never reported as an error; callers branch on it.
type CommandResult struct {
	// ExitCode is the child's exit status, or -1 when it could not be spawned
	ExitCode int

	// Stdout holds standard output when the call was captured
	Stdout string

	// Stderr holds standard error when the call was captured
	Stderr string

	// Err is the spawn failure (missing binary, cancelled context), if any.
	// It is kept for diagnostics only.
	Err error
}

// OK reports whether the command exited 0.
func (r CommandResult) OK() bool {
	return r.ExitCode == 0
}

// Lines returns the non-empty, trimmed lines of Stdout.
func (r CommandResult) Lines() []string {
	var lines []string
	for _, line := range strings.Split(r.Stdout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Runner executes external commands. args[0] names the binary.
type Runner interface {
	Run(ctx context.Context, capture bool, args ...string) CommandResult
}

// OSRunner runs commands as child processes and blocks until they exit.
type OSRunner struct {
	// Stdout and Stderr receive the child's output for uncaptured calls
	Stdout io.Writer
	Stderr io.Writer

	logger *log.Logger
}

// NewOSRunner creates a runner streaming uncaptured output to the process's
// own stdout and stderr.
func NewOSRunner(logger *log.Logger) *OSRunner {
	if logger == nil {
		logger = log.Default()
	}
	return &OSRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Run spawns args[0] with the remaining arguments and waits for it.
func (r *OSRunner) Run(ctx context.Context, capture bool, args ...string) CommandResult {
	if len(args) == 0 {
		return CommandResult{ExitCode: -1, Err: errors.New("empty command")}
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}

	r.logger.Debug("exec", "cmd", strings.Join(args, " "), "capture", capture)

	err := cmd.Run()
	res := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
			res.Err = err
		}
	}

	r.logger.Debug("exit", "cmd", args[0]+" "+firstArg(args), "code", res.ExitCode, "err", res.Err)
	return res
}

func firstArg(args []string) string {
	if len(args) < 2 {
		return ""
	}
	return args[1]
}

// Verify OSRunner implements Runner
var _ Runner = (*OSRunner)(nil)
