package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/artifactx/internal/config"
	"github.com/agentx-labs/artifactx/internal/workspace"
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear [dir]",
	Short: "Delete everything inside a directory",
	Long: `Remove every file and subdirectory inside dir, keeping dir itself.
Defaults to the configured output directory. Asks for confirmation unless
--yes is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	dir := config.OutputDir()
	if len(args) == 1 {
		dir = args[0]
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	if err := checkClearable(abs); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Attempting to clear: %s\n", abs)

	if !clearYes {
		ok, err := confirm(cmd, fmt.Sprintf("Delete everything in %s? [y/N] ", abs))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil
		}
	}

	if err := workspace.Clear(abs); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "All files deleted successfully.")
	return nil
}

// checkClearable refuses the filesystem root and the user's home directory.
func checkClearable(abs string) error {
	if filepath.Dir(abs) == abs {
		return fmt.Errorf("refusing to clear filesystem root %s", abs)
	}
	if home, err := os.UserHomeDir(); err == nil && filepath.Clean(home) == abs {
		return fmt.Errorf("refusing to clear home directory %s", abs)
	}
	return nil
}

// confirm prints prompt and reads a yes/no answer from the command's stdin.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
