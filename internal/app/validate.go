package app

import (
	"context"
	"errors"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/voidreamer/anvil/internal/core"
)

// Validate checks one package, or every package in the repository.
// Each package is checked independently and failures are aggregated
// rather than stopping at the first one.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	resolver, _, err := s.buildResolver()
	if err != nil {
		return ValidateResult{}, err
	}

	targets := resolver.Repo.PackageNames()
	if strings.TrimSpace(req.Package) != "" {
		targets = []string{req.Package}
	}

	result := ValidateResult{}
	for _, target := range targets {
		outcome := ValidateOutcome{Package: target, OK: true}
		if err := s.validateOne(ctx, resolver, target); err != nil {
			outcome.OK = false
			outcome.Detail = errorDetail(err)
			result.Failures++
		}
		result.Checked = append(result.Checked, outcome)
	}
	return result, nil
}

func (s Service) validateOne(ctx context.Context, resolver core.ResolverCore, requestText string) error {
	manifest, err := resolver.FindPackage(requestText)
	if err != nil {
		return err
	}
	assert.NotEmpty(ctx, manifest.Name, "manifest name must be set")
	assert.NotEmpty(ctx, manifest.Version, "manifest version must be set")
	return resolver.ValidatePackage(requestText)
}

func errorDetail(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
