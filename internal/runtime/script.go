package runtime

import (
	"context"
	"strings"
)

// CommandSeparator splits a RunScript body into independently run fragments.
const CommandSeparator = "&&"

// FragmentResult is the outcome of one command fragment.
type FragmentResult struct {
	Command string
	Output  *Output
	Err     error
}

// Failed reports whether the fragment could not run or exited non-zero.
func (f FragmentResult) Failed() bool {
	return f.Err != nil || (f.Output != nil && f.Output.ExitCode != 0)
}

// SplitCommands splits code on "&&" and returns the trimmed, non-empty fragments.
func SplitCommands(code string) []string {
	var commands []string
	for _, part := range strings.Split(code, CommandSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			commands = append(commands, part)
		}
	}
	return commands
}

// RunScript runs every fragment of code in order. Unlike shell "&&", a failing
// fragment does not stop the ones after it; each result is returned for the
// caller to report.
func RunScript(ctx context.Context, r Runner, code string, opts RunOpts) []FragmentResult {
	commands := SplitCommands(code)
	results := make([]FragmentResult, 0, len(commands))
	for _, c := range commands {
		out, err := r.Run(ctx, c, opts)
		results = append(results, FragmentResult{Command: c, Output: out, Err: err})
	}
	return results
}
