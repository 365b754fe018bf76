package ports

import (
	"github.com/voidreamer/anvil/internal/types"
)

// ConfigPort loads the user configuration with platform overrides and
// path expansion already applied.
type ConfigPort interface {
	Load() (types.Config, error)
}
