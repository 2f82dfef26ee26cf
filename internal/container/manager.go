package container

import "context"

// Querier answers read-only questions about the runtime.
type Querier interface {
	// Runtime returns the runtime binary name (e.g., "docker").
	Runtime() string

	// Available reports whether the runtime binary is on the search path.
	Available() bool

	// ImageExists reports whether an image inspect exits 0.
	ImageExists(ctx context.Context, image string) bool

	// ContainerRunning reports whether name is among the running containers.
	ContainerRunning(ctx context.Context, name string) bool

	// ContainerExists reports whether name is among all containers,
	// running or stopped.
	ContainerExists(ctx context.Context, name string) bool

	// ContainersForImage lists containers whose ancestor is image, in
	// runtime order.
	ContainersForImage(ctx context.Context, image string) ListResult

	// ContainerNames lists running containers, or all when includeAll is set.
	ContainerNames(ctx context.Context, includeAll bool) ListResult
}

// Manager provides container lifecycle management on top of Querier.
// Every mutating call returns an *ExitError when the runtime exits non-zero.
type Manager interface {
	Querier

	// Build builds image from the given build context.
	Build(ctx context.Context, image, contextDir string) error

	// Run creates and starts a detached container.
	Run(ctx context.Context, cfg RunConfig) error

	// Start starts an existing, stopped container.
	Start(ctx context.Context, name string) error

	// Stop stops a running container.
	Stop(ctx context.Context, name string) error

	// ForceRemove removes a container whether or not it is running.
	ForceRemove(ctx context.Context, name string) error
}
