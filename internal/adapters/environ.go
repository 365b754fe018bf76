package adapters

import (
	"os"
	"strings"

	"github.com/voidreamer/anvil/internal/ports"
)

// OSEnviron reads the live process environment. It is the only place in
// the codebase that touches ambient environment state.
type OSEnviron struct{}

func NewOSEnviron() OSEnviron {
	return OSEnviron{}
}

func (OSEnviron) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnviron) Snapshot() map[string]string {
	env := map[string]string{}
	for _, pair := range os.Environ() {
		if key, value, ok := strings.Cut(pair, "="); ok {
			env[key] = value
		}
	}
	return env
}

// FixedEnviron serves a canned environment snapshot, for tests and for
// hosts that need resolution isolated from ambient state.
type FixedEnviron struct {
	Values map[string]string
}

func NewFixedEnviron(values map[string]string) FixedEnviron {
	return FixedEnviron{Values: values}
}

func (e FixedEnviron) Lookup(key string) (string, bool) {
	value, ok := e.Values[key]
	return value, ok
}

func (e FixedEnviron) Snapshot() map[string]string {
	env := make(map[string]string, len(e.Values))
	for key, value := range e.Values {
		env[key] = value
	}
	return env
}

var (
	_ ports.EnvironPort = OSEnviron{}
	_ ports.EnvironPort = FixedEnviron{}
)
