package plan

import "github.com/agentx-labs/artifactx/internal/artifact"

// Plan is a serialized, ordered list of steps.
type Plan struct {
	FormatVersion string          `yaml:"format_version" json:"format_version"`
	Title         string          `yaml:"title,omitempty" json:"title,omitempty"`
	Steps         []artifact.Step `yaml:"steps" json:"steps"`
}

// FromSteps wraps steps in a Plan at the current format version. The title is
// taken from the leading folder step when there is one. Steps are copied.
func FromSteps(steps []artifact.Step) *Plan {
	p := &Plan{
		FormatVersion: FormatVersion,
		Steps:         append([]artifact.Step{}, steps...),
	}
	if len(steps) > 0 && steps[0].Type == artifact.CreateFolder {
		p.Title = steps[0].Title
	}
	return p
}
