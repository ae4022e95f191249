package cli

import (
	"fmt"

	"github.com/agentx-labs/artifactx/internal/artifact"
	"github.com/agentx-labs/artifactx/internal/config"
	"github.com/agentx-labs/artifactx/internal/materialize"
	"github.com/agentx-labs/artifactx/internal/plan"
	"github.com/agentx-labs/artifactx/internal/runtime"
	"github.com/agentx-labs/artifactx/internal/samples"
	"github.com/spf13/cobra"
)

var (
	applyPlan      string
	applySamples   bool
	applyDir       string
	applyNoRun     bool
	applyDryRun    bool
	applyContinue  bool
	applyScriptDir string
)

var applyCmd = &cobra.Command{
	Use:   "apply [file|-]",
	Short: "Materialize steps onto the filesystem",
	Long: `Parse a document (or load a plan with --plan, or use the built-in sample
steps with --samples) and materialize the steps:

  - file steps are written below the destination directory
  - shell steps are split on "&&" and every fragment is run, even when an
    earlier one fails

When the destination directory does not exist yet, it is created and the run
stops there; run apply again (or pass --continue) to write the steps.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVar(&applyPlan, "plan", "", "Apply a saved plan file instead of parsing a document")
	applyCmd.Flags().BoolVar(&applySamples, "samples", false, "Apply the built-in sample steps")
	applyCmd.Flags().StringVar(&applyDir, "dir", "", "Destination directory (default: config output_dir)")
	applyCmd.Flags().BoolVar(&applyNoRun, "no-run", false, "Do not execute shell steps")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Report what would happen without changing anything")
	applyCmd.Flags().BoolVar(&applyContinue, "continue", false, "Keep going in the run that creates the destination directory")
	applyCmd.Flags().StringVar(&applyScriptDir, "script-dir", "", "Working directory for shell steps (default: current directory)")
	applyCmd.MarkFlagsMutuallyExclusive("plan", "samples")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	steps, err := loadSteps(cmd, args)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No steps to apply.")
		return nil
	}

	dir := applyDir
	if dir == "" {
		dir = config.OutputDir()
	}

	m := materialize.New(runtime.DispatchRuntime(config.Shell()), cmd.OutOrStdout())
	result, applyErr := m.Apply(cmd.Context(), steps, materialize.Options{
		Root:                dir,
		ScriptDir:           applyScriptDir,
		RunScripts:          config.RunScripts() && !applyNoRun,
		DryRun:              applyDryRun,
		ContinueAfterCreate: applyContinue,
	})
	if result == nil {
		return applyErr
	}

	if result.RootCreated && !applyContinue {
		fmt.Fprintf(cmd.ErrOrStderr(), "Run apply again, or pass --continue, to write %d steps into %s.\n", len(steps), dir)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nApplied %d steps to %s (%d files, %d commands, %d failed).\n",
		len(steps), dir, len(result.Files), len(result.Commands), result.Failed)
	return applyErr
}

// loadSteps returns the steps selected by --samples, --plan, or the document argument.
func loadSteps(cmd *cobra.Command, args []string) ([]artifact.Step, error) {
	switch {
	case applySamples:
		return samples.Steps(), nil
	case applyPlan != "":
		p, err := plan.ReadFile(applyPlan)
		if err != nil {
			return nil, err
		}
		return p.Steps, nil
	default:
		doc, err := readDocument(cmd, args)
		if err != nil {
			return nil, err
		}
		return artifact.Parse(doc), nil
	}
}
