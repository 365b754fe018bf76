package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/voidreamer/anvil/internal/ports"
	"github.com/voidreamer/anvil/internal/types"
)

// ManifestFileName is the per-version manifest file name inside a
// version directory.
const ManifestFileName = "package.yaml"

// ManifestFileAdapter loads package.yaml manifests for a given runtime
// platform. The platform is a parameter rather than a compile-time
// branch so any target can be loaded on any host.
type ManifestFileAdapter struct {
	Platform string
}

func NewManifestFileAdapter(platform string) ManifestFileAdapter {
	return ManifestFileAdapter{Platform: platform}
}

// Load reads the manifest in directory, records the absolute load
// directory as the package root, and applies the matching platform
// variants exactly once.
func (a ManifestFileAdapter) Load(directory string) (types.Manifest, error) {
	path := filepath.Join(directory, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Manifest{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("package manifest not found: %s", path)).
				WithCause(err)
		}
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read package manifest: %s", path)).
			WithCause(err)
	}

	var manifest types.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse package manifest: %s", path)).
			WithCause(err)
	}

	root, err := filepath.Abs(directory)
	if err != nil {
		root = directory
	}
	manifest.Root = root

	applyVariants(&manifest, a.Platform)
	return manifest, nil
}

// applyVariants merges every variant whose platform tag matches, in
// declaration order. Variant requires append after the base requires;
// variant environment entries overwrite on key collision, with later
// matching variants winning. A variant without a platform tag never
// matches.
func applyVariants(manifest *types.Manifest, platform string) {
	for _, variant := range manifest.Variants {
		if variant.Platform == "" || variant.Platform != platform {
			continue
		}
		manifest.Requires = append(manifest.Requires, variant.Requires...)
		for _, entry := range variant.Environment.Entries() {
			manifest.Environment.Set(entry.Key, entry.Value)
		}
	}
}

var _ ports.ManifestLoaderPort = ManifestFileAdapter{}
