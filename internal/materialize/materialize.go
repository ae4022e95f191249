package materialize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/artifactx/internal/artifact"
	"github.com/agentx-labs/artifactx/internal/log"
	"github.com/agentx-labs/artifactx/internal/runtime"
)

// ErrOutsideRoot is returned for step paths that resolve outside the root.
var ErrOutsideRoot = errors.New("path escapes destination root")

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Options controls a single Apply run.
type Options struct {
	// Root is the destination directory for file steps.
	Root string

	// ScriptDir is the working directory for RunScript commands. Empty means
	// the current process directory, not Root.
	ScriptDir string

	// RunScripts enables execution of RunScript steps. When false they are
	// marked skipped.
	RunScripts bool

	// DryRun reports what would happen without touching the filesystem or
	// running commands. Step statuses are left unchanged.
	DryRun bool

	// ContinueAfterCreate processes steps in the same run that created Root.
	// By default a run that has to create Root stops right after doing so.
	ContinueAfterCreate bool
}

// Result holds the outcome of an Apply run.
type Result struct {
	Root        string
	RootCreated bool
	Dirs        []string // directories created below Root
	Files       []string // step paths written, relative to Root
	Commands    []runtime.FragmentResult
	Failed      int // steps marked failed
}

// Materializer applies steps to the filesystem.
type Materializer struct {
	Runner runtime.Runner
	Out    io.Writer
}

// New returns a Materializer that runs commands with r and reports to out.
func New(r runtime.Runner, out io.Writer) *Materializer {
	return &Materializer{Runner: r, Out: out}
}

// Apply materializes steps under opts.Root, updating each step's Status in
// place. Failures of individual steps are reported and do not stop later
// steps; they are returned joined once every step has been visited.
func (m *Materializer) Apply(ctx context.Context, steps []artifact.Step, opts Options) (*Result, error) {
	if opts.Root == "" {
		return nil, fmt.Errorf("destination root is required")
	}

	result := &Result{Root: opts.Root}

	created, err := m.ensureRoot(opts)
	if err != nil {
		return nil, err
	}
	if created {
		result.RootCreated = true
		if !opts.ContinueAfterCreate {
			return result, nil
		}
	}

	var failures []error
	for i := range steps {
		if err := ctx.Err(); err != nil {
			failures = append(failures, err)
			break
		}

		st := &steps[i]
		log.Debug("applying step", "id", st.ID, "type", st.Type, "path", st.Path)

		var stepErr error
		switch {
		case st.Path != "":
			stepErr = m.writeFile(st, opts, result)
		case st.Type == artifact.RunScript:
			stepErr = m.runScript(ctx, st, opts, result)
		case st.Type == artifact.CreateFolder:
			if !opts.DryRun {
				st.Status = artifact.StatusCompleted
			}
		default:
			m.printf("Skipping %q: no path\n", st.Title)
			if !opts.DryRun {
				st.Status = artifact.StatusSkipped
			}
		}

		if stepErr != nil {
			failures = append(failures, fmt.Errorf("step %d (%s): %w", st.ID, st.Title, stepErr))
			if !opts.DryRun {
				st.Status = artifact.StatusFailed
			}
			result.Failed++
		}
	}

	return result, errors.Join(failures...)
}

// ensureRoot creates opts.Root if it is missing and reports whether it did.
func (m *Materializer) ensureRoot(opts Options) (bool, error) {
	info, err := os.Stat(opts.Root)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("destination %s is not a directory", opts.Root)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking destination %s: %w", opts.Root, err)
	}

	if opts.DryRun {
		m.printf("Would create directory: %s\n", opts.Root)
		return true, nil
	}
	if err := os.MkdirAll(opts.Root, dirPerm); err != nil {
		return false, fmt.Errorf("creating destination %s: %w", opts.Root, err)
	}
	m.printf("Directory created: %s\n", opts.Root)
	return true, nil
}

func (m *Materializer) writeFile(st *artifact.Step, opts Options, result *Result) error {
	fullPath, err := resolve(opts.Root, st.Path)
	if err != nil {
		m.printf("Error: %v\n", err)
		return err
	}

	if opts.DryRun {
		m.printf("Would write %s (%d bytes)\n", fullPath, len(st.Code))
		result.Files = append(result.Files, st.Path)
		return nil
	}

	dir := filepath.Dir(fullPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			m.printf("Error: %v\n", err)
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
		m.printf("Directory created: %s\n", dir)
		result.Dirs = append(result.Dirs, dir)
	}

	if err := os.WriteFile(fullPath, []byte(st.Code), filePerm); err != nil {
		m.printf("Error: %v\n", err)
		return fmt.Errorf("writing %s: %w", fullPath, err)
	}
	if st.Code == "" {
		m.printf("Empty file created: %s\n", fullPath)
	} else {
		m.printf("File created: %s\n", fullPath)
	}

	result.Files = append(result.Files, st.Path)
	st.Status = artifact.StatusCompleted
	return nil
}

func (m *Materializer) runScript(ctx context.Context, st *artifact.Step, opts Options, result *Result) error {
	if !opts.RunScripts {
		m.printf("Skipping script: %s\n", st.Code)
		if !opts.DryRun {
			st.Status = artifact.StatusSkipped
		}
		return nil
	}

	if opts.DryRun {
		for _, c := range runtime.SplitCommands(st.Code) {
			m.printf("Would run: %s\n", c)
		}
		return nil
	}

	runner := m.Runner
	if runner == nil {
		runner = runtime.DispatchRuntime("")
	}

	m.printf("Running script: %s\n", st.Code)
	fragments := runtime.RunScript(ctx, runner, st.Code, runtime.RunOpts{Dir: opts.ScriptDir})
	result.Commands = append(result.Commands, fragments...)

	failed := 0
	for _, f := range fragments {
		switch {
		case f.Err != nil:
			m.printf("Error: %v\n", f.Err)
		case f.Output.ExitCode != 0:
			m.printf("Error: %q exited with code %d\n", f.Command, f.Output.ExitCode)
			if s := strings.TrimSpace(f.Output.Stderr); s != "" {
				m.printf("stderr: %s\n", s)
			}
		case strings.TrimSpace(f.Output.Stderr) != "":
			m.printf("stderr: %s\n", strings.TrimSpace(f.Output.Stderr))
		default:
			m.printf("stdout: %s\n", strings.TrimSpace(f.Output.Stdout))
		}
		if f.Failed() {
			failed++
		}
	}
	m.printf("Script executed\n")

	if failed > 0 {
		return fmt.Errorf("%d of %d commands failed", failed, len(fragments))
	}
	st.Status = artifact.StatusCompleted
	return nil
}

// resolve joins rel onto root and rejects results that leave root.
func resolve(root, rel string) (string, error) {
	full := filepath.Join(root, filepath.FromSlash(rel))
	r, err := filepath.Rel(root, full)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, rel)
	}
	if r == "." || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, rel)
	}
	return full, nil
}

func (m *Materializer) printf(format string, args ...any) {
	if m.Out == nil {
		return
	}
	fmt.Fprintf(m.Out, format, args...)
}
