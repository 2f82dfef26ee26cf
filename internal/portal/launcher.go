package portal

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/RevCBH/onionportal/internal/config"
	"github.com/RevCBH/onionportal/internal/container"
)

// Progress shows an activity indicator for message until stop is called.
type Progress func(message string) (stop func())

func noProgress(string) func() { return func() {} }

// Launcher drives the portal container through its lifecycle.
// All state lives in the runtime; a Launcher only holds configuration.
type Launcher struct {
	cfg      *config.Config
	rt       container.Manager
	report   Reporter
	progress Progress
	logger   *log.Logger
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithProgress sets the activity indicator for slow runtime calls.
func WithProgress(p Progress) Option {
	return func(l *Launcher) { l.progress = p }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Launcher) { l.logger = logger }
}

// New creates a Launcher.
func New(cfg *config.Config, rt container.Manager, report Reporter, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:      cfg,
		rt:       rt,
		report:   report,
		progress: noProgress,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the launcher's configuration.
func (l *Launcher) Config() *config.Config {
	return l.cfg
}

// Start brings the portal up. It builds the image when missing, then either
// leaves a running container alone, restarts a stopped one, or creates a new
// one. Only a newly created container gets the data directory mounted, and
// only when persist is set.
func (l *Launcher) Start(ctx context.Context, persist bool, steps *Stepper) error {
	if steps == nil {
		steps = NewStepper(l.report)
	}

	if err := l.requireRuntime(); err != nil {
		return err
	}

	if err := l.ensureImage(ctx, steps); err != nil {
		return err
	}

	name := l.cfg.ContainerName
	steps.Next(fmt.Sprintf("Probing container %s.", name))
	if l.rt.ContainerRunning(ctx, name) {
		l.report.Success(fmt.Sprintf("The portal is already live at %s.", l.cfg.AccessURL()))
		l.report.Info(fmt.Sprintf("Nothing changed. Stop the container with: %s stop %s", l.rt.Runtime(), name))
		return nil
	}

	if l.rt.ContainerExists(ctx, name) {
		return l.startExisting(ctx, steps)
	}
	return l.createNew(ctx, persist, steps)
}

// CheckRuntime reports an error when the runtime binary is missing.
func (l *Launcher) CheckRuntime() error {
	return l.requireRuntime()
}

func (l *Launcher) requireRuntime() error {
	if l.rt.Available() {
		return nil
	}
	l.report.Error(fmt.Sprintf("%s is not installed or not on the PATH.", l.rt.Runtime()))
	return ErrRuntimeUnavailable
}

func (l *Launcher) ensureImage(ctx context.Context, steps *Stepper) error {
	image := l.cfg.ImageName
	steps.Next(fmt.Sprintf("Checking base image %s.", image))
	if l.rt.ImageExists(ctx, image) {
		l.report.Success(fmt.Sprintf("Image %s found in cache.", image))
		return nil
	}

	steps.Next(fmt.Sprintf("Building image %s.", image))
	if err := l.rt.Build(ctx, image, l.cfg.BuildContext); err != nil {
		l.report.Error(fmt.Sprintf("Failed to build image %s.", image))
		return fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}
	l.report.Success(fmt.Sprintf("Image %s ready.", image))
	return nil
}

func (l *Launcher) startExisting(ctx context.Context, steps *Stepper) error {
	name := l.cfg.ContainerName
	steps.Next(fmt.Sprintf("Restarting existing container %s.", name))

	stop := l.progress(fmt.Sprintf("Starting %s", name))
	err := l.rt.Start(ctx, name)
	stop()
	if err != nil {
		l.report.Error(fmt.Sprintf("Could not start existing container %s.", name))
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	l.report.Success(fmt.Sprintf("Container %s resumed.", name))
	l.reportURLs()
	return nil
}

func (l *Launcher) createNew(ctx context.Context, persist bool, steps *Stepper) error {
	name := l.cfg.ContainerName
	steps.Next(fmt.Sprintf("Launching new container %s.", name))

	dataDir := ""
	if persist {
		if err := os.MkdirAll(l.cfg.DataDir, 0o755); err != nil {
			l.report.Error(fmt.Sprintf("Could not create data directory %s.", l.cfg.DataDir))
			return fmt.Errorf("%w: %w", ErrCreateFailed, err)
		}
		dataDir = l.cfg.DataDir
		l.report.Info(fmt.Sprintf("Sessions will be saved to %s.", dataDir))
	} else {
		l.report.Info("Ephemeral session: changes will not be saved.")
	}

	run := container.PortalRunConfig(l.cfg.ImageName, name, l.cfg.HTTPPort, l.cfg.VNCPort, dataDir)
	if err := l.rt.Run(ctx, run); err != nil {
		l.report.Error(fmt.Sprintf("Could not create container %s.", name))
		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	l.report.Success(fmt.Sprintf("Container %s launched.", name))
	l.reportURLs()
	return nil
}

func (l *Launcher) reportURLs() {
	l.report.Info(fmt.Sprintf("Portal: %s", l.cfg.AccessURL()))
	l.report.Info(fmt.Sprintf("VNC client (optional): %s", l.cfg.VNCURL()))
}
