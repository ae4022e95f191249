package cli

import (
	"fmt"

	"github.com/agentx-labs/artifactx/internal/artifact"
	"github.com/agentx-labs/artifactx/internal/log"
	"github.com/agentx-labs/artifactx/internal/plan"
	"github.com/spf13/cobra"
)

var (
	parseFormat string
	parseOutput string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Extract steps from a document",
	Long: `Parse a document containing a boltArtifact block and print the steps it
describes. The document is read from the named file, or from stdin when the
argument is omitted or "-".

Use --output to save the steps as a plan file (.yaml or .json) that
"apply --plan" can materialize later.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", formatTable, "Output format (table, json, yaml)")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "Write the steps to a plan file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	steps := artifact.Parse(doc)
	log.Debug("parsed document", "bytes", len(doc), "steps", len(steps))
	if len(steps) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No boltArtifact found in input.")
	}

	if parseOutput != "" {
		if err := plan.WriteFile(parseOutput, plan.FromSteps(steps)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d steps to %s\n", len(steps), parseOutput)
		return nil
	}

	return printSteps(cmd.OutOrStdout(), steps, parseFormat)
}
