// Package shared provides common utility functions used across multiple
// packages in the anvil codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// SplitNameVersion splits a request or identifier at its last hyphen
// into a name and a version part. A value without a hyphen is returned
// unchanged with ok=false: a hyphenated name with no version is
// inherently ambiguous with a hyphenated version and is not
// special-cased.
func SplitNameVersion(value string) (string, string, bool) {
	idx := strings.LastIndex(value, "-")
	if idx < 0 {
		return value, "", false
	}
	return value[:idx], value[idx+1:], true
}

// UniqueOrdered removes duplicates from values, keeping the first
// occurrence of each and preserving order.
func UniqueOrdered(values []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

// UniqueCleanPaths deduplicates paths after cleaning, preserving order.
func UniqueCleanPaths(paths []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		cleaned := filepath.Clean(path)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}
