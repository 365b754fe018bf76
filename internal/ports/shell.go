package ports

// ShellPort spawns subprocesses with a resolved environment. The full
// merged map is handed over at once.
type ShellPort interface {
	// Detect returns the user's preferred shell: $SHELL when set,
	// otherwise a platform default.
	Detect(environ EnvironPort) string

	// Spawn starts an interactive shell with the given environment and
	// blocks until it exits.
	Spawn(shell string, env map[string]string) error

	// RunCommand executes command[0] with command[1:] as arguments and
	// returns its exit code.
	RunCommand(command []string, env map[string]string) (int, error)
}
