package cli

import (
	"github.com/agentx-labs/artifactx/internal/branding"
	"github.com/agentx-labs/artifactx/internal/config"
	"github.com/agentx-labs/artifactx/internal/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads documents that embed a boltArtifact block, extracts the
ordered steps it describes (create folder, create file, run command), and
materializes them onto the filesystem.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		level := config.LogLevel()
		if verbose {
			level = "debug"
		}
		log.Init(level, cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		log.Error("command failed", "err", err)
	}
	return err
}
