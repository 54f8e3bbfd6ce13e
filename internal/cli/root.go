package cli

import (
	"github.com/initgen-labs/initgen/internal/branding"
	"github.com/initgen-labs/initgen/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` walks you through language, coordinates, packaging,
platform version, and dependency selection, then fetches the generated
starter archive from an Initializr-compatible service and expands it
into a local folder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// resolveServiceURL picks the service base URL: flag, then config,
// then the built-in default.
func resolveServiceURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := config.Get(config.KeyServiceURL); v != "" {
		return v
	}
	return branding.ServiceURL()
}
