package adapters

import (
	"runtime"

	"github.com/voidreamer/anvil/internal/types"
)

// CurrentPlatform maps runtime.GOOS onto the platform tags used by
// manifest variants and config overrides. Unrecognized systems return
// an empty tag, which matches nothing.
func CurrentPlatform() string {
	switch runtime.GOOS {
	case "linux":
		return types.PlatformLinux
	case "windows":
		return types.PlatformWindows
	case "darwin":
		return types.PlatformMacOS
	default:
		return ""
	}
}
