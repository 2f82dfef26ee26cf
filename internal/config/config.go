package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the portal launcher.
// It is resolved once by LoadConfig and never mutated afterwards.
type Config struct {
	// Runtime is the container runtime binary; empty means auto-detect
	Runtime string `yaml:"runtime"`

	// ImageName is the image built and instantiated by the launcher
	ImageName string `yaml:"image_name"`

	// ContainerName is the fixed name of the portal container
	ContainerName string `yaml:"container_name"`

	// DataDir is the host directory bind-mounted to /config when persisting
	DataDir string `yaml:"data_dir"`

	// BuildContext is the directory passed to the image build
	BuildContext string `yaml:"build_context"`

	// HTTPPort is the host port published for the web UI. Not validated.
	HTTPPort string `yaml:"http_port"`

	// VNCPort is the host port published for the VNC server. Not validated.
	VNCPort string `yaml:"vnc_port"`

	// LogLevel controls diagnostic verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Persistence is the raw ONION_PORTAL_PERSISTENCE value, if any.
	// Only the environment can set it.
	Persistence string `yaml:"-"`
}

// AccessURL is the address of the portal's web UI.
func (c *Config) AccessURL() string {
	return "http://localhost:" + c.HTTPPort
}

// VNCURL is the address of the portal's VNC server.
func (c *Config) VNCURL() string {
	return "vnc://localhost:" + c.VNCPort
}

// LoadOptions controls where LoadConfig looks for its inputs.
type LoadOptions struct {
	// BaseDir is the program directory; defaults are relative to it
	BaseDir string

	// File is an explicit config file. When empty, DefaultConfigFile in
	// BaseDir is read if present.
	File string

	// Getenv reads the process environment. Defaults to os.Getenv.
	Getenv Getenv
}

// LoadConfig resolves configuration from defaults, then the config file,
// then environment overrides. A .env file in BaseDir supplies values for
// variables missing from the process environment.
func LoadConfig(opts LoadOptions) (*Config, error) {
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	cfg := DefaultConfig(opts.BaseDir)

	if err := loadFile(cfg, opts); err != nil {
		return nil, err
	}

	dotenv, err := readDotenv(joinBase(opts.BaseDir, DefaultEnvFile))
	if err != nil {
		return nil, err
	}
	env := layeredEnv(opts.Getenv, dotenv)
	applyEnvOverrides(cfg, env)

	// Relative paths from the environment are taken from the working
	// directory; defaults and file values from BaseDir.
	cfg.DataDir = resolvePath(opts.BaseDir, cfg.DataDir, env(EnvDataDir) != "")
	cfg.BuildContext = resolvePath(opts.BaseDir, cfg.BuildContext, env(EnvBuildContext) != "")

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func loadFile(cfg *Config, opts LoadOptions) error {
	path := opts.File
	explicit := path != ""
	if !explicit {
		path = joinBase(opts.BaseDir, DefaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Note: missing default config file is not an error (use defaults)
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

func resolvePath(baseDir, path string, fromEnv bool) string {
	if fromEnv && !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return joinBase(baseDir, path)
}

func joinBase(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ProgramDir returns the directory holding the running executable, or the
// working directory when that cannot be determined.
func ProgramDir() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			return filepath.Dir(resolved)
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
