package plan

import (
	"testing"

	"github.com/agentx-labs/artifactx/internal/artifact"
)

func TestValidate_ValidPlan(t *testing.T) {
	data := []byte(`format_version: "1.0.0"
title: Demo
steps:
  - id: 1
    title: Demo
    description: ""
    type: CreateFolder
    status: pending
  - id: 2
    title: Create a.txt
    type: CreateFile
    status: completed
    code: hello
    path: a.txt
  - id: 3
    title: Run command
    type: RunScript
    status: failed
    code: npm install
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid plan, got issues: %+v", result.Issues)
	}
}

func TestValidate_EmptyStepsValid(t *testing.T) {
	result, err := Validate([]byte(`{"format_version": "1.0.0", "steps": []}`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid plan, got issues: %+v", result.Issues)
	}
}

func TestValidate_SchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantPath string
	}{
		{
			"missing format version",
			`steps: []`,
			"",
		},
		{
			"unknown step type",
			`format_version: "1.0.0"
steps:
  - {id: 1, title: x, type: DeleteFile, status: pending}`,
			"/steps/0/type",
		},
		{
			"unknown status",
			`format_version: "1.0.0"
steps:
  - {id: 1, title: x, type: CreateFolder, status: running}`,
			"/steps/0/status",
		},
		{
			"id below one",
			`format_version: "1.0.0"
steps:
  - {id: 0, title: x, type: CreateFolder, status: pending}`,
			"/steps/0/id",
		},
		{
			"folder with path",
			`format_version: "1.0.0"
steps:
  - {id: 1, title: x, type: CreateFolder, status: pending, path: a}`,
			"/steps/0",
		},
		{
			"script with path",
			`format_version: "1.0.0"
steps:
  - {id: 1, title: x, type: CreateFolder, status: pending}
  - {id: 2, title: y, type: RunScript, status: pending, code: ls, path: a}`,
			"/steps/1",
		},
		{
			"unknown field",
			`format_version: "1.0.0"
steps: []
extra: true`,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Fatal("expected invalid plan")
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue at %q: %+v", tt.wantPath, result.Issues)
			}
		})
	}
}

func TestValidate_MalformedInput(t *testing.T) {
	if _, err := Validate([]byte("steps: [unterminated")); err == nil {
		t.Error("expected error for malformed YAML, got nil")
	}
}

func TestCheckSteps(t *testing.T) {
	folder := artifact.Step{ID: 1, Type: artifact.CreateFolder}

	tests := []struct {
		name       string
		steps      []artifact.Step
		wantIssues int
	}{
		{"empty", nil, 0},
		{"folder only", []artifact.Step{folder}, 0},
		{"ordered", []artifact.Step{folder, {ID: 2, Type: artifact.CreateFile}, {ID: 3, Type: artifact.RunScript}}, 0},
		{"gap in ids", []artifact.Step{folder, {ID: 3, Type: artifact.CreateFile}}, 1},
		{"no leading folder", []artifact.Step{{ID: 1, Type: artifact.RunScript}}, 1},
		{"second folder", []artifact.Step{folder, {ID: 2, Type: artifact.CreateFolder}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := CheckSteps(tt.steps)
			if len(issues) != tt.wantIssues {
				t.Errorf("CheckSteps() returned %d issues, want %d: %+v", len(issues), tt.wantIssues, issues)
			}
		})
	}
}

func TestValidate_SequenceIssues(t *testing.T) {
	data := []byte(`format_version: "1.0.0"
steps:
  - {id: 1, title: x, type: CreateFolder, status: pending}
  - {id: 5, title: y, type: RunScript, status: pending, code: ls}
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid plan")
	}
	if result.Issues[0].Keyword != "sequence" || result.Issues[0].Path != "/steps/1/id" {
		t.Errorf("unexpected issue: %+v", result.Issues[0])
	}
}
