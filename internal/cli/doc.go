// Package cli defines the Cobra command tree for the artifactx CLI. Each file
// in this package registers one top-level command (parse, apply, clear, etc.)
// with the root command. Commands delegate to internal packages for parsing
// and materializing and only handle flags, input, and output formatting.
package cli
