package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/voidreamer/anvil/internal/ports"
	"github.com/voidreamer/anvil/internal/types"
)

// ConfigFileAdapter loads the user configuration, flattens the platform
// override block for the runtime platform, and expands ~ and ${VAR}
// references in package paths.
type ConfigFileAdapter struct {
	Platform string
	Environ  ports.EnvironPort
}

func NewConfigFileAdapter(platform string, environ ports.EnvironPort) ConfigFileAdapter {
	return ConfigFileAdapter{Platform: platform, Environ: environ}
}

// Load reads the config file from the first candidate location. An
// absent file is not an error: the default search paths apply.
func (a ConfigFileAdapter) Load() (types.Config, error) {
	path := a.configPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return a.defaultConfig(), nil
		}
		return types.Config{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read config: %s", path)).
			WithCause(err)
	}

	var config types.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return types.Config{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse config: %s", path)).
			WithCause(err)
	}

	if overrides := config.Platform.For(a.Platform); overrides != nil {
		config.PackagePaths = append(config.PackagePaths, overrides.PackagePaths...)
	}
	config.PackagePaths = a.expandPaths(config.PackagePaths)
	return config, nil
}

// configPath picks the config file location: $ANVIL_CONFIG first, then
// ~/.anvil.yaml, then ~/.config/anvil/config.yaml.
func (a ConfigFileAdapter) configPath() string {
	if path, ok := a.Environ.Lookup("ANVIL_CONFIG"); ok && path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".anvil.yaml"
	}
	path := filepath.Join(home, ".anvil.yaml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	xdgPath := filepath.Join(home, ".config", "anvil", "config.yaml")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return path
}

// defaultConfig is used when no config file exists: $ANVIL_PACKAGES
// entries, the user's package directories, and the system path.
func (a ConfigFileAdapter) defaultConfig() types.Config {
	var paths []string
	if value, ok := a.Environ.Lookup("ANVIL_PACKAGES"); ok && value != "" {
		for _, path := range strings.Split(value, ":") {
			if path != "" {
				paths = append(paths, path)
			}
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, "packages"),
			filepath.Join(home, ".local", "share", "anvil", "packages"),
		)
	}
	paths = append(paths, "/opt/packages")
	return types.Config{PackagePaths: paths}
}

// expandPaths expands a leading ~ and any $VAR / ${VAR} references
// through the environ provider.
func (a ConfigFileAdapter) expandPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		out = append(out, a.expandPath(path))
	}
	return out
}

func (a ConfigFileAdapter) expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.Expand(path, func(key string) string {
		value, _ := a.Environ.Lookup(key)
		return value
	})
}

var _ ports.ConfigPort = ConfigFileAdapter{}
