package adapters

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/voidreamer/anvil/internal/ports"
)

// ShellAdapter spawns shells and commands with a resolved environment.
type ShellAdapter struct{}

func NewShellAdapter() ShellAdapter {
	return ShellAdapter{}
}

// Detect returns the user's preferred shell: $SHELL when set, otherwise
// a platform default (pwsh or cmd on Windows, bash elsewhere).
func (ShellAdapter) Detect(environ ports.EnvironPort) string {
	if shell, ok := environ.Lookup("SHELL"); ok && shell != "" {
		return shell
	}
	if runtime.GOOS == "windows" {
		if _, err := exec.LookPath("pwsh"); err == nil {
			return "pwsh"
		}
		return "cmd"
	}
	return "bash"
}

// Spawn starts an interactive shell with the full merged environment
// set at once and blocks until it exits. The prompt gets an [anvil]
// prefix so nested sessions are recognizable.
func (ShellAdapter) Spawn(shell string, env map[string]string) error {
	withPrompt := make(map[string]string, len(env)+1)
	for key, value := range env {
		withPrompt[key] = value
	}
	if prompt, ok := withPrompt["PS1"]; ok {
		withPrompt["PS1"] = "[anvil] " + prompt
	} else {
		withPrompt["PS1"] = `[anvil] \u@\h:\w\$ `
	}

	cmd := exec.Command(shell)
	cmd.Env = flattenEnv(withPrompt)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("shell exited with status %d", exitErr.ExitCode())).
				WithCause(err)
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to start shell: %s", shell)).
			WithCause(err)
	}
	return nil
}

// RunCommand executes command[0] with the remaining arguments and the
// given environment, wiring stdio through, and returns the child's exit
// code.
func (ShellAdapter) RunCommand(command []string, env map[string]string) (int, error) {
	if len(command) == 0 {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no command specified")
	}
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Env = flattenEnv(env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 1, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("failed to run command: %s", command[0])).
		WithCause(err)
}

// EnvScript renders the environment as a setup script for the given
// shell, with per-family escaping. Keys are sorted for stable output.
func EnvScript(shell string, env map[string]string) string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	switch filepath.Base(shell) {
	case "fish":
		for _, key := range keys {
			escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(env[key])
			fmt.Fprintf(&builder, "set -gx %s '%s'\n", key, escaped)
		}
	case "pwsh", "powershell":
		for _, key := range keys {
			escaped := strings.ReplaceAll(env[key], `'`, `''`)
			fmt.Fprintf(&builder, "$env:%s = '%s'\n", key, escaped)
		}
	case "cmd":
		for _, key := range keys {
			fmt.Fprintf(&builder, "set %s=%s\n", key, env[key])
		}
	default:
		// bash, zsh, sh, and anything unrecognized.
		for _, key := range keys {
			escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(env[key])
			fmt.Fprintf(&builder, "export %s=\"%s\"\n", key, escaped)
		}
	}
	return builder.String()
}

func flattenEnv(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key+"="+env[key])
	}
	return out
}

var _ ports.ShellPort = ShellAdapter{}
