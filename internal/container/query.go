package container

import (
	"context"

	"github.com/samber/lo"
)

// ListResult is the tagged outcome of a listing query. A failed query is
// distinguishable from an empty one; Names applies the fallback policy.
type ListResult struct {
	names    []string
	failed   bool
	exitCode int
}

// ListOK builds a successful result.
func ListOK(names []string) ListResult {
	return ListResult{names: names}
}

// ListFailed builds a result for a query that exited with code.
func ListFailed(code int) ListResult {
	return ListResult{failed: true, exitCode: code}
}

// Failed reports whether the query itself failed.
func (r ListResult) Failed() bool {
	return r.failed
}

// ExitCode returns the failing query's exit code, or 0.
func (r ListResult) ExitCode() int {
	return r.exitCode
}

// Names returns the listed names. A failed query yields an empty list.
func (r ListResult) Names() []string {
	if r.failed {
		return nil
	}
	return r.names
}

// Contains reports whether name was listed.
func (r ListResult) Contains(name string) bool {
	return lo.Contains(r.Names(), name)
}

// Runtime returns the runtime binary name.
func (m *CLIManager) Runtime() string {
	return m.runtime
}

// Available reports whether the runtime binary resolves on the search path.
func (m *CLIManager) Available() bool {
	_, err := m.lookPath(m.runtime)
	return err == nil
}

// ImageExists reports whether `image inspect` exits 0.
func (m *CLIManager) ImageExists(ctx context.Context, image string) bool {
	res := m.runner.Run(ctx, true, m.runtime, "image", "inspect", image)
	return res.OK()
}

// ContainerNames runs `ps [-a] --format {{.Names}}`.
func (m *CLIManager) ContainerNames(ctx context.Context, includeAll bool) ListResult {
	args := []string{m.runtime, "ps"}
	if includeAll {
		args = append(args, "-a")
	}
	args = append(args, "--format", "{{.Names}}")
	return m.list(ctx, args)
}

// ContainerRunning reports whether name is among the running containers.
func (m *CLIManager) ContainerRunning(ctx context.Context, name string) bool {
	return m.ContainerNames(ctx, false).Contains(name)
}

// ContainerExists reports whether name is among all containers.
func (m *CLIManager) ContainerExists(ctx context.Context, name string) bool {
	return m.ContainerNames(ctx, true).Contains(name)
}

// ContainersForImage runs `ps -a --filter ancestor=<image> --format {{.Names}}`.
func (m *CLIManager) ContainersForImage(ctx context.Context, image string) ListResult {
	return m.list(ctx, []string{
		m.runtime, "ps", "-a",
		"--filter", "ancestor=" + image,
		"--format", "{{.Names}}",
	})
}

func (m *CLIManager) list(ctx context.Context, args []string) ListResult {
	res := m.runner.Run(ctx, true, args...)
	if !res.OK() {
		m.logger.Debug("listing failed, treating as empty", "code", res.ExitCode, "stderr", res.Stderr)
		return ListFailed(res.ExitCode)
	}
	return ListOK(res.Lines())
}
