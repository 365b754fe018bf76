package ports

// EnvironPort isolates reads of the live process environment so that
// resolution and expansion can run against a fixed snapshot in tests.
type EnvironPort interface {
	// Lookup returns the value of a single variable and whether it is
	// set.
	Lookup(key string) (string, bool)

	// Snapshot returns a copy of the full environment. Callers own the
	// returned map.
	Snapshot() map[string]string
}
