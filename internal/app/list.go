package app

import (
	"context"

	"github.com/voidreamer/anvil/internal/core"
)

// List returns all package names, or the versions of one package in
// ascending version order.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	resolver, _, err := s.buildResolver()
	if err != nil {
		return ListResult{}, err
	}
	if req.Package != "" {
		versions, err := resolver.Repo.Versions(req.Package)
		if err != nil {
			return ListResult{}, err
		}
		core.SortVersions(versions)
		return ListResult{Versions: versions}, nil
	}
	return ListResult{Packages: resolver.Repo.PackageNames()}, nil
}
