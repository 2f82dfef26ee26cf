package config

import (
	"testing"
)

func envMap(values map[string]string) Getenv {
	return func(key string) string { return values[key] }
}

func TestEnvOverrides_ImageAndContainer(t *testing.T) {
	cfg := &Config{ImageName: "original", ContainerName: "original"}

	applyEnvOverrides(cfg, envMap(map[string]string{
		"IMAGE_NAME":     "custom_image",
		"CONTAINER_NAME": "custom_box",
	}))

	if cfg.ImageName != "custom_image" {
		t.Errorf("expected ImageName to be 'custom_image', got '%s'", cfg.ImageName)
	}
	if cfg.ContainerName != "custom_box" {
		t.Errorf("expected ContainerName to be 'custom_box', got '%s'", cfg.ContainerName)
	}
}

func TestEnvOverrides_Ports(t *testing.T) {
	cfg := &Config{HTTPPort: "5800", VNCPort: "5900"}

	applyEnvOverrides(cfg, envMap(map[string]string{
		"HTTP_PORT": "8080",
		"VNC_PORT":  "8081",
	}))

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected HTTPPort to be '8080', got '%s'", cfg.HTTPPort)
	}
	if cfg.VNCPort != "8081" {
		t.Errorf("expected VNCPort to be '8081', got '%s'", cfg.VNCPort)
	}
}

func TestEnvOverrides_DataDirAndPersistence(t *testing.T) {
	cfg := &Config{DataDir: "original"}

	applyEnvOverrides(cfg, envMap(map[string]string{
		"TOR_BROWSER_CONFIG_DIR":   "/tmp/tor",
		"ONION_PORTAL_PERSISTENCE": "no",
	}))

	if cfg.DataDir != "/tmp/tor" {
		t.Errorf("expected DataDir to be '/tmp/tor', got '%s'", cfg.DataDir)
	}
	if cfg.Persistence != "no" {
		t.Errorf("expected Persistence to be 'no', got '%s'", cfg.Persistence)
	}
}

func TestEnvOverrides_RuntimeBuildContextLogLevel(t *testing.T) {
	cfg := &Config{LogLevel: "warn"}

	applyEnvOverrides(cfg, envMap(map[string]string{
		"ONION_PORTAL_RUNTIME":       "podman",
		"ONION_PORTAL_BUILD_CONTEXT": "/src/portal",
		"ONION_PORTAL_LOG_LEVEL":     "debug",
	}))

	if cfg.Runtime != "podman" {
		t.Errorf("expected Runtime to be 'podman', got '%s'", cfg.Runtime)
	}
	if cfg.BuildContext != "/src/portal" {
		t.Errorf("expected BuildContext to be '/src/portal', got '%s'", cfg.BuildContext)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got '%s'", cfg.LogLevel)
	}
}

func TestEnvOverrides_EmptyNoChange(t *testing.T) {
	cfg := &Config{
		ImageName:     "original-image",
		ContainerName: "original-container",
		HTTPPort:      "5800",
	}

	applyEnvOverrides(cfg, envMap(map[string]string{
		"IMAGE_NAME":     "",
		"CONTAINER_NAME": "",
		"HTTP_PORT":      "",
	}))

	if cfg.ImageName != "original-image" {
		t.Errorf("expected ImageName to remain 'original-image', got '%s'", cfg.ImageName)
	}
	if cfg.ContainerName != "original-container" {
		t.Errorf("expected ContainerName to remain 'original-container', got '%s'", cfg.ContainerName)
	}
	if cfg.HTTPPort != "5800" {
		t.Errorf("expected HTTPPort to remain '5800', got '%s'", cfg.HTTPPort)
	}
}

func TestLayeredEnv_ProcessWins(t *testing.T) {
	getenv := layeredEnv(
		envMap(map[string]string{"HTTP_PORT": "9000"}),
		map[string]string{"HTTP_PORT": "7000", "VNC_PORT": "7001"},
	)

	if got := getenv("HTTP_PORT"); got != "9000" {
		t.Errorf("expected process value '9000', got '%s'", got)
	}
	if got := getenv("VNC_PORT"); got != "7001" {
		t.Errorf("expected dotenv value '7001', got '%s'", got)
	}
	if got := getenv("IMAGE_NAME"); got != "" {
		t.Errorf("expected empty for unset key, got '%s'", got)
	}
}
