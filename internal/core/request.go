package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/voidreamer/anvil/internal/shared"
	"github.com/voidreamer/anvil/internal/types"
)

// ParseRequest parses a package request string into a name plus version
// constraint. Examples: "maya-2024" (exact), "arnold-7.2+" (minimum),
// "houdini-19.0..19.5" (inclusive range), "nuke-13|14" (one of),
// "maya" (any version).
//
// The split point is the last hyphen. The constraint forms are tried in
// order: trailing "+", then "..", then "|", and whatever remains is an
// exact version.
func ParseRequest(text string) (types.PackageRequest, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.PackageRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty package request")
	}
	name, versionPart, ok := shared.SplitNameVersion(trimmed)
	if !ok {
		return types.PackageRequest{
			Name:       trimmed,
			Constraint: types.VersionConstraint{Kind: types.ConstraintAny},
		}, nil
	}
	constraint, err := parseConstraint(versionPart)
	if err != nil {
		return types.PackageRequest{}, err
	}
	return types.PackageRequest{Name: name, Constraint: constraint}, nil
}

func parseConstraint(text string) (types.VersionConstraint, error) {
	switch {
	case strings.HasSuffix(text, "+"):
		return types.VersionConstraint{
			Kind:    types.ConstraintMinimum,
			Version: strings.TrimSuffix(text, "+"),
		}, nil
	case strings.Contains(text, ".."):
		parts := strings.Split(text, "..")
		if len(parts) != 2 {
			return types.VersionConstraint{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid version range: %s", text))
		}
		return types.VersionConstraint{
			Kind: types.ConstraintRange,
			Low:  parts[0],
			High: parts[1],
		}, nil
	case strings.Contains(text, "|"):
		return types.VersionConstraint{
			Kind:    types.ConstraintOneOf,
			Options: strings.Split(text, "|"),
		}, nil
	default:
		return types.VersionConstraint{
			Kind:    types.ConstraintExact,
			Version: text,
		}, nil
	}
}

// MatchesConstraint reports whether a concrete version satisfies the
// constraint. Minimum and Range bounds are evaluated under
// CompareVersions; Exact and OneOf are plain string equality.
func MatchesConstraint(c types.VersionConstraint, version string) bool {
	switch c.Kind {
	case types.ConstraintExact:
		return version == c.Version
	case types.ConstraintMinimum:
		return CompareVersions(version, c.Version) >= 0
	case types.ConstraintRange:
		return CompareVersions(version, c.Low) >= 0 && CompareVersions(version, c.High) <= 0
	case types.ConstraintOneOf:
		return slices.Contains(c.Options, version)
	case types.ConstraintAny:
		return true
	default:
		return false
	}
}
