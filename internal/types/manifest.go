package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest is the in-memory form of one package version's definition as
// declared in its package.yaml. Root is filled in at load time and never
// persisted.
type Manifest struct {
	// Name is the package name, e.g. "maya" or "arnold".
	Name string `yaml:"name"`

	// Version is the package version string. Semantic versions get
	// semantic ordering; anything else is ordered byte-wise.
	Version string `yaml:"version"`

	// Description is an optional human-readable summary.
	Description string `yaml:"description,omitempty"`

	// Requires lists dependency request strings, e.g. "usd-23.5+".
	Requires []string `yaml:"requires"`

	// Environment holds the variables this package contributes.
	// Declaration order is significant: later entries may reference
	// variables set by earlier ones.
	Environment EnvMap `yaml:"environment"`

	// Commands maps command aliases to their invocations.
	Commands map[string]string `yaml:"commands"`

	// Variants are platform-specific overlays, merged at load time.
	Variants []PlatformVariant `yaml:"variants"`

	// Root is the absolute directory the manifest was loaded from.
	Root string `yaml:"-"`
}

// Identifier returns the unique name-version identifier used for
// deduplication within a resolution.
func (m Manifest) Identifier() string {
	return fmt.Sprintf("%s-%s", m.Name, m.Version)
}

// PlatformVariant is a platform-specific overlay of additional requires
// and environment entries. A variant without a platform tag never
// applies.
type PlatformVariant struct {
	Platform    string   `yaml:"platform,omitempty"`
	Requires    []string `yaml:"requires"`
	Environment EnvMap   `yaml:"environment"`
}

// EnvEntry is one key/value pair of an EnvMap.
type EnvEntry struct {
	Key   string
	Value string
}

// EnvMap is a string-to-string mapping that preserves the declaration
// order of its YAML source.
type EnvMap struct {
	entries []EnvEntry
}

// NewEnvMap builds an EnvMap from entries in order. Duplicate keys keep
// the last value at the first key's position.
func NewEnvMap(entries ...EnvEntry) EnvMap {
	var out EnvMap
	for _, entry := range entries {
		out.Set(entry.Key, entry.Value)
	}
	return out
}

// Entries returns the pairs in declaration order.
func (e EnvMap) Entries() []EnvEntry {
	return e.entries
}

// Len returns the number of entries.
func (e EnvMap) Len() int {
	return len(e.entries)
}

// Get returns the value for key and whether it is present.
func (e EnvMap) Get(key string) (string, bool) {
	for _, entry := range e.entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Set overwrites the value for an existing key in place, or appends a
// new entry.
func (e *EnvMap) Set(key string, value string) {
	for i, entry := range e.entries {
		if entry.Key == key {
			e.entries[i].Value = value
			return
		}
	}
	e.entries = append(e.entries, EnvEntry{Key: key, Value: value})
}

// UnmarshalYAML decodes a YAML mapping node keeping key order.
func (e *EnvMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("environment must be a mapping, got %s", nodeKindName(node.Kind))
	}
	entries := make([]EnvEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		var value string
		if err := valueNode.Decode(&value); err != nil {
			return err
		}
		entries = append(entries, EnvEntry{Key: key, Value: value})
	}
	e.entries = entries
	return nil
}

// MarshalYAML encodes the mapping in declaration order.
func (e EnvMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range e.entries {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Value},
		)
	}
	return node, nil
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
