package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/agentx-labs/artifactx/internal/config"
	"github.com/agentx-labs/artifactx/internal/plan"
	"github.com/agentx-labs/artifactx/internal/runtime"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment apply depends on",
	Long:  `Report the config file, shell, output directory, and plan schema status.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		failed := 0
		for _, check := range []func(io.Writer) bool{checkConfig, checkShell, checkOutputDir, checkPlanSchema} {
			if !check(w) {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func checkConfig(w io.Writer) bool {
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [INFO] config file %s not found, using defaults\n", path)
		return true
	}
	fmt.Fprintf(w, "  [ OK ] config file %s\n", path)
	return true
}

func checkShell(w io.Writer) bool {
	shell := config.Shell()
	if shell == "" {
		shell = runtime.DefaultShell()
	}
	if _, ok := runtime.DispatchRuntime(shell).(*runtime.ShellRuntime); !ok {
		fmt.Fprintf(w, "  [FAIL] shell %q is not supported\n", shell)
		return false
	}
	path, err := exec.LookPath(shell)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] shell %s not found\n", shell)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] shell %s found at %s\n", shell, path)
	return true
}

func checkOutputDir(w io.Writer) bool {
	dir, err := filepath.Abs(config.OutputDir())
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] output dir: %v\n", err)
		return false
	}
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		fmt.Fprintf(w, "  [INFO] output dir %s does not exist yet; the first apply creates it\n", dir)
		return true
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] output dir %s: %v\n", dir, err)
		return false
	case !info.IsDir():
		fmt.Fprintf(w, "  [FAIL] output dir %s is not a directory\n", dir)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] output dir %s\n", dir)
	return true
}

func checkPlanSchema(w io.Writer) bool {
	data := fmt.Sprintf(`{"format_version": %q, "steps": []}`, plan.FormatVersion)
	result, err := plan.Validate([]byte(data))
	if err != nil || !result.Valid {
		fmt.Fprintf(w, "  [FAIL] plan schema: %v\n", err)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] plan schema (format %s)\n", plan.FormatVersion)
	return true
}
