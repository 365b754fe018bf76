package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/voidreamer/anvil/internal/ports"
	"github.com/voidreamer/anvil/internal/types"
)

// maxResolveDepth bounds the dependency walk. The seen-set already
// stops revisits of an identifier, so the guard only fires on a true
// mutual cycle between distinct version selections, which is reported
// instead of recursing until stack exhaustion.
const maxResolveDepth = 64

// ResolvedSet is the ordered outcome of a resolution: manifests in
// first-resolved order, dependency before dependent, deduplicated by
// identifier at their first-encountered position.
type ResolvedSet struct {
	Manifests []types.Manifest
}

// Identifiers returns the name-version identifiers in resolution order.
func (s ResolvedSet) Identifiers() []string {
	out := make([]string, 0, len(s.Manifests))
	for _, manifest := range s.Manifests {
		out = append(out, manifest.Identifier())
	}
	return out
}

// ResolverCore expands aliases and recursively resolves package
// requests against an immutable repository snapshot. It performs no
// writes to the snapshot, so a shared snapshot may serve concurrent
// resolutions as long as it is treated as read-only.
type ResolverCore struct {
	Repo    ports.RepositoryPort
	Aliases map[string][]string
}

func NewResolverCore(repo ports.RepositoryPort, aliases map[string][]string) ResolverCore {
	return ResolverCore{
		Repo:    repo,
		Aliases: aliases,
	}
}

// Resolve turns request strings into an ordered, deduplicated manifest
// list. Each request is expanded through the alias table (one level;
// unknown names pass through), parsed, and resolved depth-first with
// dependencies preceding their dependents. One failed request fails the
// whole resolution.
func (r ResolverCore) Resolve(ctx context.Context, requests []string) (ResolvedSet, error) {
	if r.Repo == nil {
		return ResolvedSet{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a repository port")
	}

	out := ResolvedSet{}
	seen := map[string]struct{}{}
	for _, text := range r.expandAliases(requests) {
		request, err := ParseRequest(text)
		if err != nil {
			return ResolvedSet{}, err
		}
		if err := r.resolveRequest(ctx, request, &out, seen, 0); err != nil {
			return ResolvedSet{}, err
		}
	}

	log.Ctx(ctx).Debug().Int("resolved", len(out.Manifests)).Msg("resolution completed")
	return out, nil
}

// expandAliases rewrites each request through the alias table, in
// order. Expansion is one level only: an alias target that names
// another alias is taken literally.
func (r ResolverCore) expandAliases(requests []string) []string {
	expanded := make([]string, 0, len(requests))
	for _, request := range requests {
		if targets, ok := r.Aliases[request]; ok {
			expanded = append(expanded, targets...)
			continue
		}
		expanded = append(expanded, request)
	}
	return expanded
}

// resolveRequest is a depth-first pre-order walk: the best match for
// the request is selected, its requires are resolved in declaration
// order, and only then is the package itself appended.
func (r ResolverCore) resolveRequest(ctx context.Context, request types.PackageRequest, out *ResolvedSet, seen map[string]struct{}, depth int) error {
	if depth > maxResolveDepth {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("dependency cycle involving %s", request.Name))
	}

	manifest, err := r.findBestMatch(request)
	if err != nil {
		return err
	}
	id := manifest.Identifier()
	if _, ok := seen[id]; ok {
		return nil
	}

	for _, depText := range manifest.Requires {
		depRequest, err := ParseRequest(depText)
		if err != nil {
			return err
		}
		if err := r.resolveRequest(ctx, depRequest, out, seen, depth+1); err != nil {
			return err
		}
	}

	seen[id] = struct{}{}
	out.Manifests = append(out.Manifests, manifest)
	log.Ctx(ctx).Debug().Str("package", id).Msg("package resolved")
	return nil
}

// findBestMatch selects the single highest version satisfying the
// request's constraint.
func (r ResolverCore) findBestMatch(request types.PackageRequest) (types.Manifest, error) {
	versions, err := r.Repo.Versions(request.Name)
	if err != nil {
		return types.Manifest{}, err
	}

	var matching []string
	for _, version := range versions {
		if MatchesConstraint(request.Constraint, version) {
			matching = append(matching, version)
		}
	}
	if len(matching) == 0 {
		known := append([]string(nil), versions...)
		SortVersions(known)
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no matching version for %s: available versions are %v", request.Name, known))
	}

	best := HighestVersion(matching)
	manifest, ok := r.Repo.Manifest(request.Name, best)
	if !ok {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("repository snapshot missing %s-%s", request.Name, best))
	}
	return manifest, nil
}

// FindPackage parses a request string and returns its best match.
func (r ResolverCore) FindPackage(requestText string) (types.Manifest, error) {
	request, err := ParseRequest(requestText)
	if err != nil {
		return types.Manifest{}, err
	}
	return r.findBestMatch(request)
}

// ValidatePackage checks that a request resolves and that every
// declared dependency of the selected manifest also has a matching
// package. It does not recurse past direct dependencies.
func (r ResolverCore) ValidatePackage(requestText string) error {
	manifest, err := r.FindPackage(requestText)
	if err != nil {
		return err
	}
	for _, depText := range manifest.Requires {
		if _, err := r.FindPackage(depText); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeOf(err)).
				WithMsg(fmt.Sprintf("missing dependency %s", depText)).
				WithCause(err)
		}
	}
	return nil
}
