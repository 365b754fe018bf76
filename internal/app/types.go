package app

import "github.com/voidreamer/anvil/internal/types"

type EnvRequest struct {
	Packages []string
}

type EnvResult struct {
	// Packages are the resolved identifiers in resolution order.
	Packages []string
	// Environment is the flat merged map.
	Environment map[string]string
}

type RunRequest struct {
	Packages []string
	// EnvVars are extra KEY=VALUE overrides applied after the merge.
	EnvVars []string
	Command []string
}

type RunResult struct {
	ExitCode int
}

type ShellRequest struct {
	Packages []string
	// Shell overrides detection; empty falls back to the config's
	// default_shell, then to $SHELL / platform default.
	Shell string
}

type ShellResult struct {
	Shell string
}

type ListRequest struct {
	// Package, when set, lists that package's versions instead of all
	// package names.
	Package string
}

type ListResult struct {
	Packages []string
	Versions []string
}

type InfoRequest struct {
	Package string
}

type InfoResult struct {
	Name        string
	Version     string
	Description string
	Root        string
	Requires    []string
	Environment []types.EnvEntry
	Commands    map[string]string
}

type ValidateRequest struct {
	// Package, when set, validates only that package; otherwise every
	// package in the repository is checked.
	Package string
}

// ValidateOutcome is one package's validation verdict.
type ValidateOutcome struct {
	Package string
	OK      bool
	Detail  string
}

type ValidateResult struct {
	Checked  []ValidateOutcome
	Failures int
}
