package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// Env resolves the requested packages and returns the merged flat
// environment along with the resolved identifiers.
func (s Service) Env(ctx context.Context, req EnvRequest) (EnvResult, error) {
	if len(req.Packages) == 0 {
		return EnvResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one package is required")
	}
	resolver, _, err := s.buildResolver()
	if err != nil {
		return EnvResult{}, err
	}
	resolved, err := resolver.Resolve(ctx, req.Packages)
	if err != nil {
		return EnvResult{}, err
	}
	env := resolved.MergedEnvironment(s.Environ)
	log.Ctx(ctx).Debug().
		Int("packages", len(resolved.Manifests)).
		Int("variables", len(env)).
		Msg("environment merged")
	return EnvResult{
		Packages:    resolved.Identifiers(),
		Environment: env,
	}, nil
}
