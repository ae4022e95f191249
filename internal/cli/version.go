package cli

import (
	"encoding/json"
	"fmt"

	"github.com/agentx-labs/artifactx/internal/branding"
	"github.com/agentx-labs/artifactx/internal/plan"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version":     buildVersion,
				"commit":      buildCommit,
				"date":        buildDate,
				"plan_format": plan.FormatVersion,
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s, plan format: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate, plan.FormatVersion)
		return nil
	},
}
