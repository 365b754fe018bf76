package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"github.com/voidreamer/anvil/internal/types"
)

func TestParseRequestExact(t *testing.T) {
	request, err := ParseRequest("maya-2024")
	require.NoError(t, err)
	require.Equal(t, "maya", request.Name)
	require.Equal(t, types.ConstraintExact, request.Constraint.Kind)
	require.True(t, MatchesConstraint(request.Constraint, "2024"))
	require.False(t, MatchesConstraint(request.Constraint, "2025"))
}

func TestParseRequestMinimum(t *testing.T) {
	request, err := ParseRequest("arnold-7.2+")
	require.NoError(t, err)
	require.Equal(t, "arnold", request.Name)
	require.Equal(t, types.ConstraintMinimum, request.Constraint.Kind)
	require.True(t, MatchesConstraint(request.Constraint, "7.5"))
	require.True(t, MatchesConstraint(request.Constraint, "7.2"))
	require.False(t, MatchesConstraint(request.Constraint, "7.0"))
}

func TestParseRequestRange(t *testing.T) {
	request, err := ParseRequest("houdini-19.0..19.5")
	require.NoError(t, err)
	require.Equal(t, "houdini", request.Name)
	require.Equal(t, types.ConstraintRange, request.Constraint.Kind)
	require.True(t, MatchesConstraint(request.Constraint, "19.2"))
	require.True(t, MatchesConstraint(request.Constraint, "19.0"))
	require.True(t, MatchesConstraint(request.Constraint, "19.5"))
	require.False(t, MatchesConstraint(request.Constraint, "20.0"))
}

func TestParseRequestRangeMalformed(t *testing.T) {
	_, err := ParseRequest("bad-1..2..3")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestParseRequestOneOf(t *testing.T) {
	request, err := ParseRequest("nuke-13|14")
	require.NoError(t, err)
	require.Equal(t, "nuke", request.Name)
	require.Equal(t, types.ConstraintOneOf, request.Constraint.Kind)
	require.True(t, MatchesConstraint(request.Constraint, "14"))
	require.False(t, MatchesConstraint(request.Constraint, "15"))
}

func TestParseRequestBareName(t *testing.T) {
	request, err := ParseRequest("maya")
	require.NoError(t, err)
	require.Equal(t, "maya", request.Name)
	require.Equal(t, types.ConstraintAny, request.Constraint.Kind)
	require.True(t, MatchesConstraint(request.Constraint, "anything"))
}

func TestParseRequestHyphenatedName(t *testing.T) {
	// The split point is always the last hyphen, so a hyphenated name
	// without a version reads its last segment as an exact version.
	request, err := ParseRequest("studio-tools")
	require.NoError(t, err)
	require.Equal(t, "studio", request.Name)
	require.Equal(t, types.ConstraintExact, request.Constraint.Kind)
	require.Equal(t, "tools", request.Constraint.Version)
}

func TestParseRequestEmpty(t *testing.T) {
	_, err := ParseRequest("  ")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
