// Package artifact extracts ordered scaffolding steps from documents that
// embed a boltArtifact container with boltAction tags. Parsing is a pure
// function of the input text and performs no I/O.
package artifact
