package core

import (
	"sort"
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// CompareVersions orders two version strings, returning -1, 0, or 1.
// When both parse as strict semantic versions they are ordered by
// semver rules; otherwise the comparison falls back to byte-wise string
// order. It never fails, which makes it usable as a total order over
// arbitrary version strings (DCC releases like "2024" or "19.0.531"
// rarely agree on a scheme).
func CompareVersions(a string, b string) int {
	va, errA := semver.StrictNewVersion(a)
	vb, errB := semver.StrictNewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return strings.Compare(a, b)
}

// SortVersions sorts version strings ascending under CompareVersions.
func SortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return CompareVersions(versions[i], versions[j]) < 0
	})
}

// HighestVersion returns the single highest version under
// CompareVersions, or the empty string for an empty slice.
func HighestVersion(versions []string) string {
	best := ""
	for _, version := range versions {
		if best == "" || CompareVersions(version, best) > 0 {
			best = version
		}
	}
	return best
}
