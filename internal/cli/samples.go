package cli

import (
	"github.com/agentx-labs/artifactx/internal/samples"
	"github.com/spf13/cobra"
)

var samplesFormat string

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Show the built-in sample steps",
	Long:  `Print the sample catalogue: the steps of a Vite + React + TypeScript starter.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSteps(cmd.OutOrStdout(), samples.Steps(), samplesFormat)
	},
}

func init() {
	samplesCmd.Flags().StringVar(&samplesFormat, "format", formatTable, "Output format (table, json, yaml)")
	rootCmd.AddCommand(samplesCmd)
}
