package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/voidreamer/anvil/internal/ports"
	"github.com/voidreamer/anvil/internal/shared"
	"github.com/voidreamer/anvil/internal/types"
)

// RepositorySnapshot is an immutable name -> version -> manifest index
// built once by ScanRepository. It is safe to share across concurrent
// resolutions as long as callers treat it as read-only.
type RepositorySnapshot struct {
	packages map[string]map[string]types.Manifest
}

// ScanRepository walks the search directories and indexes every
// loadable manifest. Layout: <dir>/<package-name>/<version>/package.yaml.
//
// Directories are deduplicated, filtered to existing ones, and scanned
// in configured order; on a name+version collision across directories
// the later occurrence replaces the earlier one. Version directories
// without a manifest file are skipped silently. A manifest that fails
// to load is logged as a warning and skipped without aborting the scan.
func ScanRepository(searchDirs []string, loader ports.ManifestLoaderPort) (*RepositorySnapshot, error) {
	snapshot := &RepositorySnapshot{packages: map[string]map[string]types.Manifest{}}
	for _, dir := range existingDirs(shared.UniqueCleanPaths(searchDirs)) {
		log.Debug().Str("dir", dir).Msg("scanning package directory")
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to scan package directory: %s", dir)).
				WithCause(err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			packageDir := filepath.Join(dir, entry.Name())
			if err := snapshot.scanPackageDir(packageDir, loader); err != nil {
				return nil, err
			}
		}
	}
	log.Info().Int("packages", len(snapshot.packages)).Msg("package scan completed")
	return snapshot, nil
}

func (s *RepositorySnapshot) scanPackageDir(packageDir string, loader ports.ManifestLoaderPort) error {
	entries, err := os.ReadDir(packageDir)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to scan package directory: %s", packageDir)).
			WithCause(err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		versionDir := filepath.Join(packageDir, entry.Name())
		if _, err := os.Stat(filepath.Join(versionDir, ManifestFileName)); err != nil {
			// Not an error: version directories often hold payload
			// trees before their manifest lands.
			continue
		}
		manifest, err := loader.Load(versionDir)
		if err != nil {
			log.Warn().Str("dir", versionDir).Err(err).Msg("failed to load package manifest")
			continue
		}
		versions, ok := s.packages[manifest.Name]
		if !ok {
			versions = map[string]types.Manifest{}
			s.packages[manifest.Name] = versions
		}
		versions[manifest.Version] = manifest
		log.Debug().Str("package", manifest.Identifier()).Msg("loaded package manifest")
	}
	return nil
}

// Versions returns every indexed version string for a package name,
// sorted lexicographically for determinism.
func (s *RepositorySnapshot) Versions(name string) ([]string, error) {
	versions, ok := s.packages[name]
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

// Manifest returns the manifest indexed under name and version.
func (s *RepositorySnapshot) Manifest(name string, version string) (types.Manifest, bool) {
	versions, ok := s.packages[name]
	if !ok {
		return types.Manifest{}, false
	}
	manifest, ok := versions[version]
	return manifest, ok
}

// PackageNames returns all indexed package names, sorted.
func (s *RepositorySnapshot) PackageNames() []string {
	out := make([]string, 0, len(s.packages))
	for name := range s.packages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func existingDirs(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		out = append(out, path)
	}
	return out
}

var _ ports.RepositoryPort = (*RepositorySnapshot)(nil)
