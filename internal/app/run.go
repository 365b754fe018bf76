package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Run resolves the requested packages, merges their environment,
// applies any extra KEY=VALUE overrides, and executes the command with
// the result. The child's exit code is returned, not treated as an
// error.
func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	if len(req.Command) == 0 {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no command specified")
	}
	resolver, _, err := s.buildResolver()
	if err != nil {
		return RunResult{}, err
	}
	resolved, err := resolver.Resolve(ctx, req.Packages)
	if err != nil {
		return RunResult{}, err
	}
	env := resolved.MergedEnvironment(s.Environ)
	for _, pair := range req.EnvVars {
		if key, value, ok := strings.Cut(pair, "="); ok {
			env[key] = value
		}
	}
	code, err := s.ShellRunner.RunCommand(req.Command, env)
	if err != nil {
		return RunResult{}, err
	}
	return RunResult{ExitCode: code}, nil
}
