// Package samples holds a fixed catalogue of example steps: the files of a
// Vite + React + TypeScript starter. It exists for demonstrations and tests of
// the materializer and is not produced by the parser.
package samples

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/agentx-labs/artifactx/internal/artifact"
	"go.yaml.in/yaml/v3"
)

//go:embed samples.yaml
var rawSamples []byte

type catalogue struct {
	Title string          `yaml:"title"`
	Steps []artifact.Step `yaml:"steps"`
}

var (
	once    sync.Once
	loaded  catalogue
	loadErr error
)

func load() (catalogue, error) {
	once.Do(func() {
		if err := yaml.Unmarshal(rawSamples, &loaded); err != nil {
			loadErr = fmt.Errorf("decoding sample catalogue: %w", err)
			return
		}
		for i := range loaded.Steps {
			loaded.Steps[i].Status = artifact.StatusPending
		}
	})
	return loaded, loadErr
}

// Title returns the catalogue's project title.
func Title() string {
	c, _ := load()
	return c.Title
}

// Steps returns a fresh copy of the sample steps, all pending. Callers may
// mutate the result freely.
func Steps() []artifact.Step {
	c, err := load()
	if err != nil {
		// The catalogue is compiled in; a decode failure is a build defect.
		panic(err)
	}
	return append([]artifact.Step(nil), c.Steps...)
}
