package plan

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/agentx-labs/artifactx/internal/artifact"
)

const sampleDoc = `<boltArtifact title="Demo">
<boltAction type="file" filePath="src/main.go">
package main

func main() {}
</boltAction>
<boltAction type="shell">go mod init demo && go build ./...</boltAction>
</boltArtifact>`

func TestFromSteps(t *testing.T) {
	steps := artifact.Parse(sampleDoc)
	p := FromSteps(steps)

	if p.FormatVersion != FormatVersion {
		t.Errorf("FormatVersion = %q, want %q", p.FormatVersion, FormatVersion)
	}
	if p.Title != "Demo" {
		t.Errorf("Title = %q, want %q", p.Title, "Demo")
	}
	if len(p.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(p.Steps))
	}

	// The plan owns its own copy.
	p.Steps[0].Status = artifact.StatusCompleted
	if steps[0].Status != artifact.StatusPending {
		t.Error("FromSteps shares the caller's slice")
	}
}

func TestFromSteps_Empty(t *testing.T) {
	p := FromSteps(nil)
	if p.Title != "" || len(p.Steps) != 0 {
		t.Errorf("FromSteps(nil) = %+v", p)
	}
}

func TestWriteAndReadFile(t *testing.T) {
	for _, ext := range []string{".yaml", ".json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "plan"+ext)
			want := FromSteps(artifact.Parse(sampleDoc))

			if err := WriteFile(path, want); err != nil {
				t.Fatalf("WriteFile() error: %v", err)
			}
			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ReadFile() =\n%+v\nwant\n%+v", got, want)
			}
		})
	}
}

func TestEncodeYAMLUsesSnakeCaseKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, FromSteps(artifact.Parse(sampleDoc)), FormatYAML); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"format_version: 1.0.0", "type: CreateFolder", "path: src/main.go", "status: pending"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, &Plan{}, "toml"); err == nil {
		t.Error("expected error for unsupported format, got nil")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"plan.yaml", FormatYAML, false},
		{"plan.YML", FormatYAML, false},
		{"out/plan.json", FormatJSON, false},
		{"plan.txt", "", true},
		{"plan", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestReadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	content := `format_version: "1.0.0"
steps:
  - id: 1
    title: Root
    type: CreateFile
    status: pending
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path)
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("ReadFile() error = %v, want *InvalidError", err)
	}
	if len(invalid.Issues) == 0 {
		t.Error("InvalidError has no issues")
	}
}

func TestReadFile_IncompatibleVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	content := `{"format_version": "2.0.0", "steps": []}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFile(path)
	if err == nil {
		t.Fatal("expected error for incompatible version, got nil")
	}
	if !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
