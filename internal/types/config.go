package types

// Platform tags used by manifest variants and config overrides.
const (
	PlatformLinux   = "linux"
	PlatformWindows = "windows"
	PlatformMacOS   = "macos"
)

// Config is the user-level configuration consumed by the resolver:
// ordered package search paths, the alias table, and platform-specific
// overrides.
type Config struct {
	// PackagePaths are searched in order. Later paths win on
	// name+version collisions.
	PackagePaths []string `yaml:"package_paths"`

	// DefaultShell overrides shell detection for `anvil shell`.
	DefaultShell string `yaml:"default_shell,omitempty"`

	// Aliases maps a name to an ordered list of request strings.
	// Expansion is one level only.
	Aliases map[string][]string `yaml:"aliases"`

	// Platform holds per-platform overrides applied at load time.
	Platform PlatformConfig `yaml:"platform"`
}

// PlatformConfig carries optional per-platform override blocks.
type PlatformConfig struct {
	Linux   *PlatformOverrides `yaml:"linux,omitempty"`
	Windows *PlatformOverrides `yaml:"windows,omitempty"`
	MacOS   *PlatformOverrides `yaml:"macos,omitempty"`
}

// For returns the override block for a platform tag, or nil.
func (p PlatformConfig) For(platform string) *PlatformOverrides {
	switch platform {
	case PlatformLinux:
		return p.Linux
	case PlatformWindows:
		return p.Windows
	case PlatformMacOS:
		return p.MacOS
	default:
		return nil
	}
}

// PlatformOverrides are the settings a platform block may override.
type PlatformOverrides struct {
	PackagePaths []string `yaml:"package_paths,omitempty"`
}
