package portal

import (
	"context"
	"fmt"
	"strings"
)

// ContainerStatus is one container derived from the portal image.
type ContainerStatus struct {
	Name    string
	Running bool
}

// Stop stops the portal container if it is running.
func (l *Launcher) Stop(ctx context.Context) error {
	if err := l.requireRuntime(); err != nil {
		return err
	}

	name := l.cfg.ContainerName
	if !l.rt.ContainerRunning(ctx, name) {
		l.report.Info(fmt.Sprintf("Container %s is not running.", name))
		return nil
	}

	stop := l.progress(fmt.Sprintf("Stopping %s", name))
	err := l.rt.Stop(ctx, name)
	stop()
	if err != nil {
		l.report.Error(fmt.Sprintf("Could not stop container %s.", name))
		return fmt.Errorf("%w: %w", ErrStopFailed, err)
	}

	l.report.Success(fmt.Sprintf("Container %s stopped.", name))
	return nil
}

// Connect restarts a container derived from the portal image, chosen by
// sel from the listed names. An unrecognised choice aborts without
// touching any container.
func (l *Launcher) Connect(ctx context.Context, sel Selector) error {
	if err := l.requireRuntime(); err != nil {
		return err
	}

	names := l.imageContainers(ctx)
	if len(names) == 0 {
		l.report.Info(fmt.Sprintf("No containers found for image %s.", l.cfg.ImageName))
		return nil
	}

	raw, err := sel(names)
	if err != nil {
		return err
	}

	name, ok := ResolveSelection(names, raw)
	if !ok {
		l.report.Error(fmt.Sprintf("Invalid selection: %q.", strings.TrimSpace(raw)))
		return ErrInvalidSelection
	}

	if l.rt.ContainerRunning(ctx, name) {
		l.report.Info(fmt.Sprintf("Container %s is already running.", name))
		return nil
	}

	stop := l.progress(fmt.Sprintf("Starting %s", name))
	err = l.rt.Start(ctx, name)
	stop()
	if err != nil {
		l.report.Error(fmt.Sprintf("Could not start container %s.", name))
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}

	l.report.Success(fmt.Sprintf("Container %s started.", name))
	return nil
}

// RemoveAll force-removes every container derived from the portal image.
// Each removal is attempted and reported on its own; the returned error
// names the containers that could not be removed.
func (l *Launcher) RemoveAll(ctx context.Context) error {
	if err := l.requireRuntime(); err != nil {
		return err
	}

	names := l.imageContainers(ctx)
	if len(names) == 0 {
		l.report.Info(fmt.Sprintf("No containers found for image %s.", l.cfg.ImageName))
		return nil
	}

	var failed []string
	for _, name := range names {
		stop := l.progress(fmt.Sprintf("Removing %s", name))
		err := l.rt.ForceRemove(ctx, name)
		stop()
		if err != nil {
			l.logger.Debug("remove failed", "container", name, "err", err)
			l.report.Error(fmt.Sprintf("Could not remove container %s.", name))
			failed = append(failed, name)
			continue
		}
		l.report.Success(fmt.Sprintf("Container %s removed.", name))
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrRemoveFailed, strings.Join(failed, ", "))
	}
	return nil
}

// List returns the containers derived from the portal image with their
// running state. Unlike Connect and RemoveAll it surfaces a failed query
// as ErrQueryFailed instead of an empty list.
func (l *Launcher) List(ctx context.Context) ([]ContainerStatus, error) {
	if err := l.requireRuntime(); err != nil {
		return nil, err
	}

	res := l.rt.ContainersForImage(ctx, l.cfg.ImageName)
	if res.Failed() {
		return nil, fmt.Errorf("%w: listing exited with status %d", ErrQueryFailed, res.ExitCode())
	}

	running := l.rt.ContainerNames(ctx, false)
	statuses := make([]ContainerStatus, 0, len(res.Names()))
	for _, name := range res.Names() {
		statuses = append(statuses, ContainerStatus{Name: name, Running: running.Contains(name)})
	}
	return statuses, nil
}

// imageContainers lists containers by ancestor image. A failed query is
// treated as an empty list.
func (l *Launcher) imageContainers(ctx context.Context) []string {
	res := l.rt.ContainersForImage(ctx, l.cfg.ImageName)
	if res.Failed() {
		l.logger.Warn("container listing failed; treating as empty", "image", l.cfg.ImageName, "code", res.ExitCode())
	}
	return res.Names()
}
