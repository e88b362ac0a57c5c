package cli

import (
	"github.com/spf13/cobra"
	"github.com/yuilib/yuigen/internal/branding"
	"github.com/yuilib/yuigen/internal/config"
	"github.com/yuilib/yuigen/internal/output"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` scaffolds YUI component libraries: the project skeleton
(Gruntfile, package manifests, lint config) and css, js or widget modules inside it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetupLogging(cmd.ErrOrStderr(), verbose)
			config.Load()
			output.Debug("loaded config", "path", config.FilePath())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newModuleCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newFilesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
// The error, if any, has already been logged when Execute returns.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := NewRootCmd().Execute(); err != nil {
		output.Error(err.Error())
		return err
	}
	return nil
}
