package cli

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"

	"github.com/RevCBH/onionportal/internal/config"
	"github.com/RevCBH/onionportal/internal/container"
	"github.com/RevCBH/onionportal/internal/portal"
)

// session holds the components wired for one invocation.
type session struct {
	cfg      *config.Config
	logger   *log.Logger
	report   portal.Reporter
	launcher *portal.Launcher
	prompt   Prompter
	styles   Styles
}

// Close releases the prompter.
func (s *session) Close() error {
	if s.prompt == nil {
		return nil
	}
	return s.prompt.Close()
}

// wire loads configuration once and assembles the launcher around it.
func (a *App) wire() (*session, error) {
	baseDir := a.baseDir
	if baseDir == "" {
		baseDir = config.ProgramDir()
	}

	cfg, err := config.LoadConfig(config.LoadOptions{
		BaseDir: baseDir,
		File:    a.configPath,
		Getenv:  a.getenv,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := a.newLogger(cfg)

	lookPath := a.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	runtime := container.ResolveRuntime(cfg.Runtime, lookPath)
	logger.Debug("resolved configuration",
		"runtime", runtime,
		"image", cfg.ImageName,
		"container", cfg.ContainerName,
		"data_dir", cfg.DataDir,
		"http_port", cfg.HTTPPort,
		"vnc_port", cfg.VNCPort)

	runner := a.runner
	if runner == nil {
		osRunner := container.NewOSRunner(logger)
		osRunner.Stdout = a.stdout
		osRunner.Stderr = a.stderr
		runner = osRunner
	}

	mgr := container.NewCLIManager(runtime,
		container.WithRunner(runner),
		container.WithLookPath(lookPath),
		container.WithLogger(logger),
	)

	report := portal.NewConsole(a.stdout, a.stderr)

	opts := []portal.Option{portal.WithLogger(logger)}
	if isTerminal(a.stdout) {
		opts = append(opts, portal.WithProgress(a.spinnerProgress))
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		report:   report,
		launcher: portal.New(cfg, mgr, report, opts...),
		prompt:   a.newPrompter(),
		styles:   NewStyles(a.stdout),
	}, nil
}

func (a *App) newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	if a.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(a.stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "[2006-01-02 15:04:05]",
		Level:           level,
		Prefix:          "onion-portal",
	})
	if err != nil {
		logger.Warn("unknown log level, using warn", "log_level", cfg.LogLevel)
	}
	return logger
}

func (a *App) spinnerProgress(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(a.stdout))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
