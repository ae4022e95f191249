package artifact

// StepType identifies the kind of work a step describes.
type StepType string

// Step type constants.
const (
	CreateFolder StepType = "CreateFolder"
	CreateFile   StepType = "CreateFile"
	RunScript    StepType = "RunScript"
)

// ValidStepTypes contains all valid step type values.
var ValidStepTypes = []StepType{
	CreateFolder,
	CreateFile,
	RunScript,
}

// Status is the processing state of a step. The parser only ever produces
// StatusPending; the remaining values are assigned by consumers.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// IsTerminal returns true if the status is a final state.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusSkipped:
		return true
	}
	return false
}

// Step is one ordered unit of scaffolding work.
//
// Code and Path are empty when absent. A CreateFile step whose body was empty
// carries an empty Code; consumers write an empty file in that case.
type Step struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Type        StepType `yaml:"type" json:"type"`
	Status      Status   `yaml:"status" json:"status"`
	Code        string   `yaml:"code,omitempty" json:"code,omitempty"`
	Path        string   `yaml:"path,omitempty" json:"path,omitempty"`
}
