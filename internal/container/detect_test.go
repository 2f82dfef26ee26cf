package container

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookPathFor(found ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, f := range found {
			if f == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", exec.ErrNotFound
	}
}

func TestDetectRuntime_PrefersDocker(t *testing.T) {
	runtime, err := DetectRuntime(lookPathFor("podman", "docker"))

	assert.NoError(t, err)
	assert.Equal(t, "docker", runtime)
}

func TestDetectRuntime_FallsBackToPodman(t *testing.T) {
	runtime, err := DetectRuntime(lookPathFor("podman"))

	assert.NoError(t, err)
	assert.Equal(t, "podman", runtime)
}

func TestDetectRuntime_ReturnsErrorWhenNoneAvailable(t *testing.T) {
	_, err := DetectRuntime(lookPathFor())

	assert.True(t, errors.Is(err, ErrNoRuntime))
}

func TestResolveRuntime(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		found     []string
		want      string
	}{
		{name: "explicit wins", preferred: "nerdctl", found: []string{"docker"}, want: "nerdctl"},
		{name: "detected", found: []string{"podman"}, want: "podman"},
		{name: "nothing installed", want: DefaultRuntime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRuntime(tt.preferred, lookPathFor(tt.found...)))
		})
	}
}

func TestDetectRuntime_RealPath(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	runtime, err := DetectRuntime(nil)
	if err != nil {
		t.Skip("no container runtime available")
	}

	cmd := exec.Command(runtime, "version")
	if err := cmd.Run(); err != nil {
		t.Errorf("%s version failed: %v", runtime, err)
	}
}
