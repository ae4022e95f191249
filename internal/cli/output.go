package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/agentx-labs/artifactx/internal/artifact"
	"github.com/agentx-labs/artifactx/internal/plan"
	"github.com/spf13/cobra"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = plan.FormatJSON
	formatYAML  = plan.FormatYAML
)

// readDocument reads the document named by args, or stdin when args is empty
// or "-".
func readDocument(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(data), nil
}

// printSteps writes steps to w as a table or as a plan document.
func printSteps(w io.Writer, steps []artifact.Step, format string) error {
	switch format {
	case formatTable:
		return printStepTable(w, steps)
	case formatJSON, formatYAML:
		return plan.Encode(w, plan.FromSteps(steps), format)
	default:
		return fmt.Errorf("unknown format %q: use %s, %s, or %s", format, formatTable, formatJSON, formatYAML)
	}
}

func printStepTable(w io.Writer, steps []artifact.Step) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tTITLE\tPATH")
	for _, st := range steps {
		path := st.Path
		if path == "" {
			path = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", st.ID, st.Type, st.Status, st.Title, path)
	}
	return tw.Flush()
}
