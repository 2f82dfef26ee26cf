package config

// Environment variable names read by the launcher.
const (
	EnvImageName    = "IMAGE_NAME"
	EnvContainer    = "CONTAINER_NAME"
	EnvDataDir      = "TOR_BROWSER_CONFIG_DIR"
	EnvHTTPPort     = "HTTP_PORT"
	EnvVNCPort      = "VNC_PORT"
	EnvPersistence  = "ONION_PORTAL_PERSISTENCE"
	EnvRuntime      = "ONION_PORTAL_RUNTIME"
	EnvBuildContext = "ONION_PORTAL_BUILD_CONTEXT"
	EnvLogLevel     = "ONION_PORTAL_LOG_LEVEL"
)

// Getenv looks up an environment variable, returning "" when unset.
type Getenv func(key string) string

// envOverrides maps environment variables to the config fields they set.
var envOverrides = []struct {
	envVar string
	field  func(*Config) *string
}{
	{EnvImageName, func(c *Config) *string { return &c.ImageName }},
	{EnvContainer, func(c *Config) *string { return &c.ContainerName }},
	{EnvDataDir, func(c *Config) *string { return &c.DataDir }},
	{EnvHTTPPort, func(c *Config) *string { return &c.HTTPPort }},
	{EnvVNCPort, func(c *Config) *string { return &c.VNCPort }},
	{EnvPersistence, func(c *Config) *string { return &c.Persistence }},
	{EnvRuntime, func(c *Config) *string { return &c.Runtime }},
	{EnvBuildContext, func(c *Config) *string { return &c.BuildContext }},
	{EnvLogLevel, func(c *Config) *string { return &c.LogLevel }},
}

// applyEnvOverrides modifies config in place with environment variable values.
// Empty values are treated as unset.
func applyEnvOverrides(cfg *Config, getenv Getenv) {
	for _, o := range envOverrides {
		if val := getenv(o.envVar); val != "" {
			*o.field(cfg) = val
		}
	}
}

// layeredEnv resolves keys from the process environment first and the
// dotenv values second.
func layeredEnv(process Getenv, dotenv map[string]string) Getenv {
	return func(key string) string {
		if v := process(key); v != "" {
			return v
		}
		return dotenv[key]
	}
}
