package container

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// ExitError reports a runtime invocation that exited non-zero.
type ExitError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

// CLIManager implements Manager using docker/podman CLI.
type CLIManager struct {
	runtime  string // "docker" or "podman"
	runner   Runner
	lookPath LookPathFunc
	logger   *log.Logger
}

// Option configures a CLIManager.
type Option func(*CLIManager)

// WithRunner replaces the process executor.
func WithRunner(r Runner) Option {
	return func(m *CLIManager) { m.runner = r }
}

// WithLookPath replaces binary resolution, used by Available.
func WithLookPath(fn LookPathFunc) Option {
	return func(m *CLIManager) { m.lookPath = fn }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(m *CLIManager) { m.logger = l }
}

// NewCLIManager creates a Manager using the specified runtime.
// Use ResolveRuntime() to pick one first.
func NewCLIManager(runtime string, opts ...Option) *CLIManager {
	m := &CLIManager{
		runtime:  runtime,
		lookPath: exec.LookPath,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.runner == nil {
		m.runner = NewOSRunner(m.logger)
	}
	return m
}

// Build builds image from contextDir. Build output streams to the terminal.
func (m *CLIManager) Build(ctx context.Context, image, contextDir string) error {
	return m.mutate(ctx, false, "build", "-t", image, contextDir)
}

// Run creates and starts a detached container.
func (m *CLIManager) Run(ctx context.Context, cfg RunConfig) error {
	return m.mutate(ctx, false, cfg.Args()...)
}

// Start starts an existing container.
func (m *CLIManager) Start(ctx context.Context, name string) error {
	return m.mutate(ctx, true, "start", name)
}

// Stop stops a running container.
func (m *CLIManager) Stop(ctx context.Context, name string) error {
	return m.mutate(ctx, true, "stop", name)
}

// ForceRemove removes a container, stopping it first if needed.
func (m *CLIManager) ForceRemove(ctx context.Context, name string) error {
	return m.mutate(ctx, true, "rm", "-f", name)
}

func (m *CLIManager) mutate(ctx context.Context, capture bool, args ...string) error {
	full := append([]string{m.runtime}, args...)
	res := m.runner.Run(ctx, capture, full...)
	if res.OK() {
		return nil
	}
	if res.Err != nil {
		m.logger.Debug("spawn failed", "cmd", strings.Join(full, " "), "err", res.Err)
	}
	return &ExitError{Args: full, ExitCode: res.ExitCode, Stderr: res.Stderr}
}

// Verify CLIManager implements Manager interface
var _ Manager = (*CLIManager)(nil)
