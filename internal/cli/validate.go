package cli

import (
	"fmt"
	"os"

	"github.com/agentx-labs/artifactx/internal/plan"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <plan-file>",
	Short: "Check a plan file",
	Long: `Validate a plan file against the plan schema, the step ordering rules, and
the supported plan format version.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading plan: %w", err)
	}

	result, err := plan.Validate(data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue)
		}
		return fmt.Errorf("%s has %d issue(s)", path, len(result.Issues))
	}

	p, err := plan.Decode(data)
	if err != nil {
		return err
	}
	if err := plan.CheckCompatible(p.FormatVersion); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d steps, format %s)\n", path, len(p.Steps), p.FormatVersion)
	return nil
}
