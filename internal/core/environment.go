package core

import (
	"regexp"
	"sort"
	"strings"

	"github.com/voidreamer/anvil/internal/ports"
	"github.com/voidreamer/anvil/internal/types"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ExpandValue expands one declared environment value through the fixed
// substitution passes, each operating on the previous pass's output:
//
//  1. ${PACKAGE_ROOT} -> the manifest's load directory
//  2. ${VERSION}      -> the manifest's version
//  3. ${NAME}         -> the manifest's name
//  4. every key in context, substituted for ${key}
//  5. any remaining ${VAR} resolved against the environ provider,
//     empty string if unset
//
// Each pass is a literal, non-recursive substitution over the whole
// string. Context keys are applied in sorted order so output is
// deterministic.
func ExpandValue(m types.Manifest, raw string, context map[string]string, environ ports.EnvironPort) string {
	result := strings.ReplaceAll(raw, "${PACKAGE_ROOT}", m.Root)
	result = strings.ReplaceAll(result, "${VERSION}", m.Version)
	result = strings.ReplaceAll(result, "${NAME}", m.Name)

	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		result = strings.ReplaceAll(result, "${"+key+"}", context[key])
	}

	result = envVarPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := match[2 : len(match)-1]
		value, _ := environ.Lookup(name)
		return value
	})
	return result
}

// ResolvedEnvironment returns base plus the manifest's declared
// entries, expanded in declaration order. Each entry is expanded
// against the accumulator so far, so later entries can reference
// earlier ones.
func ResolvedEnvironment(m types.Manifest, base map[string]string, environ ports.EnvironPort) map[string]string {
	env := make(map[string]string, len(base)+m.Environment.Len())
	for key, value := range base {
		env[key] = value
	}
	for _, entry := range m.Environment.Entries() {
		env[entry.Key] = ExpandValue(m, entry.Value, env, environ)
	}
	return env
}

// MergedEnvironment folds the resolved manifests, in resolution order,
// over a snapshot of the process environment. A dependent's keys
// overwrite its dependencies' keys, never the reverse. The complete map
// is returned at once.
func (s ResolvedSet) MergedEnvironment(environ ports.EnvironPort) map[string]string {
	env := environ.Snapshot()
	for _, manifest := range s.Manifests {
		env = ResolvedEnvironment(manifest, env, environ)
	}
	return env
}
