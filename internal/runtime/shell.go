package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ShellRuntime runs commands through a shell interpreter.
type ShellRuntime struct {
	Shell string

	// Stdout and Stderr optionally receive a live copy of the process output.
	// Output is always captured in the returned Output as well.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes command with `<shell> -c` (`cmd /C` and `pwsh -Command` for
// the Windows shells).
func (s *ShellRuntime) Run(ctx context.Context, command string, opts RunOpts) (*Output, error) {
	shell := s.Shell
	if shell == "" {
		shell = DefaultShell()
	}

	bin, err := exec.LookPath(shell)
	if err != nil {
		return nil, fmt.Errorf("shell %q not found: %w", shell, err)
	}

	cmd := exec.CommandContext(ctx, bin, shellArgs(shell, command)...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = teeWriter(&stdoutBuf, s.Stdout)
	cmd.Stderr = teeWriter(&stderrBuf, s.Stderr)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %q: %w", command, err)
	}

	return output, nil
}

func shellArgs(shell, command string) []string {
	switch shell {
	case ShellCmd:
		return []string{"/C", command}
	case ShellPowerShell:
		return []string{"-NoProfile", "-Command", command}
	default:
		return []string{"-c", command}
	}
}

func teeWriter(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}
