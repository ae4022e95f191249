package runtime

import (
	"context"
	"fmt"
	goruntime "runtime"
)

// Runner executes a single command line.
type Runner interface {
	// Run executes command and returns its output. A non-zero exit is reported
	// through Output.ExitCode; the error is reserved for failures to start or
	// wait for the process.
	Run(ctx context.Context, command string, opts RunOpts) (*Output, error)
}

// RunOpts holds optional parameters for command execution.
type RunOpts struct {
	Dir string            // working directory (optional)
	Env map[string]string // extra environment variables (overlay)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supported shell identifiers.
const (
	ShellSh         = "sh"
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellCmd        = "cmd"
	ShellPowerShell = "pwsh"
)

// DefaultShell returns the shell used when none is configured.
func DefaultShell() string {
	if goruntime.GOOS == "windows" {
		return ShellCmd
	}
	return ShellSh
}

// DispatchRuntime returns the Runner for the given shell identifier. An empty
// identifier selects DefaultShell. Unknown values produce a Runner that
// always fails.
func DispatchRuntime(shell string) Runner {
	if shell == "" {
		shell = DefaultShell()
	}
	switch shell {
	case ShellSh, ShellBash, ShellZsh, ShellCmd, ShellPowerShell:
		return &ShellRuntime{Shell: shell}
	default:
		return &unknownRuntime{name: shell}
	}
}

// unknownRuntime is returned when the shell identifier is not recognized.
type unknownRuntime struct {
	name string
}

func (u *unknownRuntime) Run(_ context.Context, _ string, _ RunOpts) (*Output, error) {
	return nil, fmt.Errorf("unknown shell %q: supported shells are %s, %s, %s, %s and %s",
		u.name, ShellSh, ShellBash, ShellZsh, ShellCmd, ShellPowerShell)
}
