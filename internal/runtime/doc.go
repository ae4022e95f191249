// Package runtime runs the shell commands embedded in RunScript steps. The
// Runner interface abstracts process execution so callers can substitute a
// fake in tests; DispatchRuntime picks the implementation for a shell name.
package runtime
