package core

import (
	"fmt"
	"sort"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/voidreamer/anvil/internal/types"
)

// testRepo is an in-memory repository snapshot for resolver tests.
type testRepo struct {
	packages map[string]map[string]types.Manifest
}

func newTestRepo(manifests ...types.Manifest) testRepo {
	repo := testRepo{packages: map[string]map[string]types.Manifest{}}
	for _, manifest := range manifests {
		versions, ok := repo.packages[manifest.Name]
		if !ok {
			versions = map[string]types.Manifest{}
			repo.packages[manifest.Name] = versions
		}
		versions[manifest.Version] = manifest
	}
	return repo
}

func (r testRepo) Versions(name string) ([]string, error) {
	versions, ok := r.packages[name]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("package not found: %s", name))
	}
	out := make([]string, 0, len(versions))
	for version := range versions {
		out = append(out, version)
	}
	sort.Strings(out)
	return out, nil
}

func (r testRepo) Manifest(name string, version string) (types.Manifest, bool) {
	versions, ok := r.packages[name]
	if !ok {
		return types.Manifest{}, false
	}
	manifest, ok := versions[version]
	return manifest, ok
}

func (r testRepo) PackageNames() []string {
	out := make([]string, 0, len(r.packages))
	for name := range r.packages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func TestResolveDependencyBeforeDependent(t *testing.T) {
	repo := newTestRepo(
		types.Manifest{Name: "alembic", Version: "1.0.0"},
		types.Manifest{Name: "maya", Version: "2024", Requires: []string{"alembic"}},
	)
	resolver := NewResolverCore(repo, nil)

	resolved, err := resolver.Resolve(t.Context(), []string{"maya-2024"})
	require.NoError(t, err)
	want := []string{"alembic-1.0.0", "maya-2024"}
	if diff := cmp.Diff(want, resolved.Identifiers()); diff != "" {
		t.Fatalf("unexpected resolution order (-want +got):\n%s", diff)
	}
}

func TestResolveSelectsHighestVersion(t *testing.T) {
	repo := newTestRepo(
		types.Manifest{Name: "usd", Version: "1.0.0"},
		types.Manifest{Name: "usd", Version: "2.0.0"},
	)
	resolver := NewResolverCore(repo, nil)

	resolved, err := resolver.Resolve(t.Context(), []string{"usd"})
	require.NoError(t, err)
	require.Equal(t, []string{"usd-2.0.0"}, resolved.Identifiers())
}

func TestResolveDeduplicatesAtFirstPosition(t *testing.T) {
	repo := newTestRepo(
		types.Manifest{Name: "usd", Version: "23.5"},
		types.Manifest{Name: "maya", Version: "2024", Requires: []string{"usd-23.5"}},
		types.Manifest{Name: "houdini", Version: "19.5", Requires: []string{"usd"}},
	)
	resolver := NewResolverCore(repo, nil)

	// Both roots select usd-23.5 through different request forms; it
	// must appear exactly once, where it was first resolved.
	resolved, err := resolver.Resolve(t.Context(), []string{"maya-2024", "houdini-19.5"})
	require.NoError(t, err)
	want := []string{"usd-23.5", "maya-2024", "houdini-19.5"}
	if diff := cmp.Diff(want, resolved.Identifiers()); diff != "" {
		t.Fatalf("unexpected resolution order (-want +got):\n%s", diff)
	}
}

func TestResolveSiblingOrderFollowsRequires(t *testing.T) {
	repo := newTestRepo(
		types.Manifest{Name: "ocio", Version: "2.1"},
		types.Manifest{Name: "usd", Version: "23.5"},
		types.Manifest{Name: "maya", Version: "2024", Requires: []string{"usd", "ocio"}},
	)
	resolver := NewResolverCore(repo, nil)

	resolved, err := resolver.Resolve(t.Context(), []string{"maya"})
	require.NoError(t, err)
	want := []string{"usd-23.5", "ocio-2.1", "maya-2024"}
	if diff := cmp.Diff(want, resolved.Identifiers()); diff != "" {
		t.Fatalf("unexpected resolution order (-want +got):\n%s", diff)
	}
}

func TestResolveUnknownPackage(t *testing.T) {
	resolver := NewResolverCore(newTestRepo(), nil)

	_, err := resolver.Resolve(t.Context(), []string{"blender"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestResolveNoMatchingVersionListsAvailable(t *testing.T) {
	repo := newTestRepo(
		types.Manifest{Name: "nuke", Version: "13.2"},
		types.Manifest{Name: "nuke", Version: "14.0"},
	)
	resolver := NewResolverCore(repo, nil)

	_, err := resolver.Resolve(t.Context(), []string{"nuke-15.0"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.Contains(t, err.Error(), "13.2")
	require.Contains(t, err.Error(), "14.0")
}

func TestResolveExpandsAliasesOneLevel(t *testing.T) {
	repo := newTestRepo(
		types.Manifest{Name: "maya", Version: "2024"},
		types.Manifest{Name: "arnold", Version: "7.2.1"},
	)
	aliases := map[string][]string{
		"lighting": {"maya-2024", "arnold-7.2.1"},
		// Nested aliases are taken literally, never re-expanded.
		"nested": {"lighting"},
	}
	resolver := NewResolverCore(repo, aliases)

	resolved, err := resolver.Resolve(t.Context(), []string{"lighting"})
	require.NoError(t, err)
	require.Equal(t, []string{"maya-2024", "arnold-7.2.1"}, resolved.Identifiers())

	_, err = resolver.Resolve(t.Context(), []string{"nested"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestResolveReportsMutualCycle(t *testing.T) {
	// a-1.0.0 requires b-2.0.0, which requires a-2.0.0, which requires
	// b-1.0.0, which requires a-1.0.0: every step selects an identifier
	// not yet seen, so only the depth guard can stop the walk.
	repo := newTestRepo(
		types.Manifest{Name: "a", Version: "1.0.0", Requires: []string{"b-2.0.0"}},
		types.Manifest{Name: "a", Version: "2.0.0", Requires: []string{"b-1.0.0"}},
		types.Manifest{Name: "b", Version: "1.0.0", Requires: []string{"a-1.0.0"}},
		types.Manifest{Name: "b", Version: "2.0.0", Requires: []string{"a-2.0.0"}},
	)
	resolver := NewResolverCore(repo, nil)

	_, err := resolver.Resolve(t.Context(), []string{"a-1.0.0"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.Contains(t, err.Error(), "dependency cycle")
}

func TestResolveDiamondConvergesViaSeenSet(t *testing.T) {
	repo := newTestRepo(
		types.Manifest{Name: "base", Version: "1.0.0"},
		types.Manifest{Name: "left", Version: "1.0.0", Requires: []string{"base"}},
		types.Manifest{Name: "right", Version: "1.0.0", Requires: []string{"base"}},
		types.Manifest{Name: "top", Version: "1.0.0", Requires: []string{"left", "right"}},
	)
	resolver := NewResolverCore(repo, nil)

	resolved, err := resolver.Resolve(t.Context(), []string{"top"})
	require.NoError(t, err)
	want := []string{"base-1.0.0", "left-1.0.0", "right-1.0.0", "top-1.0.0"}
	if diff := cmp.Diff(want, resolved.Identifiers()); diff != "" {
		t.Fatalf("unexpected resolution order (-want +got):\n%s", diff)
	}
}

func TestValidatePackage(t *testing.T) {
	repo := newTestRepo(
		types.Manifest{Name: "usd", Version: "23.5"},
		types.Manifest{Name: "maya", Version: "2024", Requires: []string{"usd"}},
		types.Manifest{Name: "katana", Version: "6.0", Requires: []string{"ghost-1.0"}},
	)
	resolver := NewResolverCore(repo, nil)

	require.NoError(t, resolver.ValidatePackage("maya"))

	err := resolver.ValidatePackage("katana")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing dependency ghost-1.0")
}
