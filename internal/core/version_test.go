package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCompareVersionsSemver(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal", a: "1.2.3", b: "1.2.3", want: 0},
		{name: "patch order", a: "1.2.3", b: "1.2.4", want: -1},
		{name: "numeric not lexicographic", a: "1.10.0", b: "1.9.0", want: 1},
		{name: "major order", a: "2.0.0", b: "10.0.0", want: -1},
		{name: "prerelease below release", a: "1.0.0-rc.1", b: "1.0.0", want: -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CompareVersions(tc.a, tc.b))
		})
	}
}

func TestCompareVersionsFallback(t *testing.T) {
	// Single-component DCC versions do not parse as strict semver, so
	// the order falls back to byte-wise string comparison.
	require.Equal(t, -1, CompareVersions("2024", "2025"))
	require.Equal(t, 0, CompareVersions("2024", "2024"))

	// One semver side is not enough: mixed inputs also fall back.
	require.Equal(t, 1, CompareVersions("abc", "1.0.0"))
}

func TestCompareVersionsTotalOrder(t *testing.T) {
	versions := []string{"1.2.0", "19.5", "1.10.0", "2024", "0.9.1"}
	for _, a := range versions {
		for _, b := range versions {
			ab := CompareVersions(a, b)
			ba := CompareVersions(b, a)
			require.Equal(t, ab, -ba, "antisymmetry for %s vs %s", a, b)
			if a == b {
				require.Zero(t, ab)
			}
		}
	}
}

func TestSortVersions(t *testing.T) {
	versions := []string{"2.0.0", "1.10.0", "1.2.0", "1.9.5"}
	SortVersions(versions)
	want := []string{"1.2.0", "1.9.5", "1.10.0", "2.0.0"}
	if diff := cmp.Diff(want, versions); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestHighestVersion(t *testing.T) {
	require.Equal(t, "2.0.0", HighestVersion([]string{"1.0.0", "2.0.0", "1.10.0"}))
	require.Equal(t, "", HighestVersion(nil))
}
