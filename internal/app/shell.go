package app

import (
	"context"
)

// Shell resolves the requested packages and starts an interactive shell
// with the merged environment. Shell selection: explicit request, then
// the config's default_shell, then detection.
func (s Service) Shell(ctx context.Context, req ShellRequest) (ShellResult, error) {
	resolver, config, err := s.buildResolver()
	if err != nil {
		return ShellResult{}, err
	}
	resolved, err := resolver.Resolve(ctx, req.Packages)
	if err != nil {
		return ShellResult{}, err
	}
	env := resolved.MergedEnvironment(s.Environ)

	shell := req.Shell
	if shell == "" {
		shell = config.DefaultShell
	}
	if shell == "" {
		shell = s.ShellRunner.Detect(s.Environ)
	}
	if err := s.ShellRunner.Spawn(shell, env); err != nil {
		return ShellResult{}, err
	}
	return ShellResult{Shell: shell}, nil
}
