// Package materialize turns parsed steps into files on disk and executed
// shell commands. It is the consumer side of the artifact parser: progress
// and failures are reported to a writer, and each step's Status is updated
// in place as it is processed.
package materialize
