package config

const (
	DefaultImageName     = "onion_portal"
	DefaultContainerName = "onion_portal"
	DefaultDataDirName   = "data"
	DefaultHTTPPort      = "5800"
	DefaultVNCPort       = "5900"
	DefaultLogLevel      = "warn"
	DefaultConfigFile    = "onion-portal.yaml"
	DefaultEnvFile       = ".env"
)

// DefaultConfig returns a Config with all default values applied.
// Paths are relative to baseDir, the directory holding the program.
func DefaultConfig(baseDir string) *Config {
	if baseDir == "" {
		baseDir = "."
	}
	return &Config{
		ImageName:     DefaultImageName,
		ContainerName: DefaultContainerName,
		DataDir:       joinBase(baseDir, DefaultDataDirName),
		BuildContext:  baseDir,
		HTTPPort:      DefaultHTTPPort,
		VNCPort:       DefaultVNCPort,
		LogLevel:      DefaultLogLevel,
	}
}
