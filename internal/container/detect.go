package container

import (
	"errors"
	"os/exec"
)

// ErrNoRuntime is returned when no container runtime is found.
var ErrNoRuntime = errors.New("no container runtime found (need docker or podman)")

// DefaultRuntime is reported when detection finds nothing, so that
// availability checks and messages still name a concrete binary.
const DefaultRuntime = "docker"

// LookPathFunc resolves a binary on the search path.
type LookPathFunc func(file string) (string, error)

// DetectRuntime finds an available container runtime.
// Checks docker first, then podman.
func DetectRuntime(lookPath LookPathFunc) (string, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, bin := range []string{"docker", "podman"} {
		if _, err := lookPath(bin); err != nil {
			continue
		}
		return bin, nil
	}
	return "", ErrNoRuntime
}

// ResolveRuntime returns preferred when set, otherwise the detected runtime,
// falling back to DefaultRuntime.
func ResolveRuntime(preferred string, lookPath LookPathFunc) string {
	if preferred != "" {
		return preferred
	}
	bin, err := DetectRuntime(lookPath)
	if err != nil {
		return DefaultRuntime
	}
	return bin
}
