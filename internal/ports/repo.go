package ports

import (
	"github.com/voidreamer/anvil/internal/types"
)

// RepositoryPort is a read-only snapshot of all discovered manifests.
// A snapshot never mutates after construction; observing filesystem
// changes requires building a new one.
type RepositoryPort interface {
	// Versions returns every known version string for a package name.
	// Unknown names fail with a not-found error.
	Versions(name string) ([]string, error)

	// Manifest returns the manifest indexed under name and version.
	Manifest(name string, version string) (types.Manifest, bool)

	// PackageNames returns all indexed package names, sorted.
	PackageNames() []string
}

// ManifestLoaderPort loads a single package manifest from a version
// directory, with the platform variant overlay already applied.
type ManifestLoaderPort interface {
	Load(directory string) (types.Manifest, error)
}
