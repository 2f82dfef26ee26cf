package container

import "fmt"

// Ports exposed inside the portal image.
const (
	InternalHTTPPort = "5800"
	InternalVNCPort  = "5900"
)

// ConfigMountPath is where persistent state is mounted inside the container.
const ConfigMountPath = "/config"

// PortMapping publishes a container port on the host.
type PortMapping struct {
	HostPort      string
	ContainerPort string
}

func (p PortMapping) String() string {
	return fmt.Sprintf("%s:%s", p.HostPort, p.ContainerPort)
}

// VolumeMount bind-mounts a host directory into the container.
type VolumeMount struct {
	HostPath      string
	ContainerPath string
}

func (v VolumeMount) String() string {
	return fmt.Sprintf("%s:%s", v.HostPath, v.ContainerPath)
}

// RunConfig specifies a create+run invocation.
type RunConfig struct {
	// Image is the image to instantiate (e.g., "onion_portal")
	Image string

	// Name is the fixed container name
	Name string

	// Ports are published in order with -p
	Ports []PortMapping

	// Volumes are mounted in order with -v
	Volumes []VolumeMount
}

// Args returns the runtime arguments for a detached run, without the
// runtime binary itself.
func (c RunConfig) Args() []string {
	args := []string{"run", "-d", "--name", c.Name}
	for _, p := range c.Ports {
		args = append(args, "-p", p.String())
	}
	for _, v := range c.Volumes {
		args = append(args, "-v", v.String())
	}
	return append(args, c.Image)
}

// PortalRunConfig builds the run configuration for the portal image.
// dataDir is mounted at /config only when non-empty.
func PortalRunConfig(image, name, httpPort, vncPort, dataDir string) RunConfig {
	cfg := RunConfig{
		Image: image,
		Name:  name,
		Ports: []PortMapping{
			{HostPort: httpPort, ContainerPort: InternalHTTPPort},
			{HostPort: vncPort, ContainerPort: InternalVNCPort},
		},
	}
	if dataDir != "" {
		cfg.Volumes = []VolumeMount{{HostPath: dataDir, ContainerPath: ConfigMountPath}}
	}
	return cfg
}
