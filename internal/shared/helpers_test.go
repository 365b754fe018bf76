package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitNameVersion(t *testing.T) {
	cases := []struct {
		input   string
		name    string
		version string
		ok      bool
	}{
		{"maya-2024", "maya", "2024", true},
		{"gcc-runtime-12", "gcc-runtime", "12", true},
		{"maya", "maya", "", false},
		{"maya-", "maya", "", true},
	}
	for _, tc := range cases {
		name, version, ok := SplitNameVersion(tc.input)
		require.Equal(t, tc.name, name, tc.input)
		require.Equal(t, tc.version, version, tc.input)
		require.Equal(t, tc.ok, ok, tc.input)
	}
}

func TestUniqueOrdered(t *testing.T) {
	got := UniqueOrdered([]string{"b", "a", "b", "c", "a"})
	require.Equal(t, []string{"b", "a", "c"}, got)
}

func TestUniqueCleanPaths(t *testing.T) {
	got := UniqueCleanPaths([]string{"/opt/packages/", "/opt/packages", "/opt//packages", "/srv"})
	require.Equal(t, []string{"/opt/packages", "/srv"}, got)
}
