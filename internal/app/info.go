package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Info returns the metadata of the best match for a package request.
func (s Service) Info(ctx context.Context, req InfoRequest) (InfoResult, error) {
	if strings.TrimSpace(req.Package) == "" {
		return InfoResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package request is required")
	}
	resolver, _, err := s.buildResolver()
	if err != nil {
		return InfoResult{}, err
	}
	manifest, err := resolver.FindPackage(req.Package)
	if err != nil {
		return InfoResult{}, err
	}
	return InfoResult{
		Name:        manifest.Name,
		Version:     manifest.Version,
		Description: manifest.Description,
		Root:        manifest.Root,
		Requires:    manifest.Requires,
		Environment: manifest.Environment.Entries(),
		Commands:    manifest.Commands,
	}, nil
}
