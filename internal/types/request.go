package types

// ConstraintKind discriminates the version-constraint variants derived
// from a request's version suffix.
type ConstraintKind string

const (
	// ConstraintExact matches a single version by string equality.
	ConstraintExact ConstraintKind = "exact"

	// ConstraintMinimum matches the given version or anything higher.
	ConstraintMinimum ConstraintKind = "minimum"

	// ConstraintRange matches versions between Low and High, inclusive.
	ConstraintRange ConstraintKind = "range"

	// ConstraintOneOf matches any member of Options by string equality.
	ConstraintOneOf ConstraintKind = "one_of"

	// ConstraintAny matches every version.
	ConstraintAny ConstraintKind = "any"
)

// VersionConstraint is a predicate over version strings. Which fields
// are meaningful depends on Kind.
type VersionConstraint struct {
	Kind    ConstraintKind
	Version string   // exact, minimum
	Low     string   // range lower bound, inclusive
	High    string   // range upper bound, inclusive
	Options []string // one_of
}

// PackageRequest is a parsed request: a package name plus the version
// constraint derived from its suffix.
type PackageRequest struct {
	Name       string
	Constraint VersionConstraint
}
