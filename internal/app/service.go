package app

import (
	"github.com/voidreamer/anvil/internal/adapters"
	"github.com/voidreamer/anvil/internal/core"
	"github.com/voidreamer/anvil/internal/ports"
	"github.com/voidreamer/anvil/internal/types"
)

// Service wires the resolver core to its collaborators. Every CLI
// command maps onto one Service operation.
type Service struct {
	ConfigLoader ports.ConfigPort
	Environ      ports.EnvironPort
	ShellRunner  ports.ShellPort
	Platform     string
}

func NewService() Service {
	platform := adapters.CurrentPlatform()
	environ := adapters.NewOSEnviron()
	return Service{
		ConfigLoader: adapters.NewConfigFileAdapter(platform, environ),
		Environ:      environ,
		ShellRunner:  adapters.NewShellAdapter(),
		Platform:     platform,
	}
}

// buildResolver loads the config, scans the configured search paths
// into a fresh repository snapshot, and returns a resolver over it.
// Each call observes the filesystem anew; within one operation the
// snapshot is immutable.
func (s Service) buildResolver() (core.ResolverCore, types.Config, error) {
	config, err := s.ConfigLoader.Load()
	if err != nil {
		return core.ResolverCore{}, types.Config{}, err
	}
	loader := adapters.NewManifestFileAdapter(s.Platform)
	repo, err := adapters.ScanRepository(config.PackagePaths, loader)
	if err != nil {
		return core.ResolverCore{}, types.Config{}, err
	}
	return core.NewResolverCore(repo, config.Aliases), config, nil
}
