package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/initgen-labs/initgen/internal/initializr"
)

var (
	depsServiceURL      string
	depsPlatformVersion string
)

var dependenciesCmd = &cobra.Command{
	Use:   "dependencies",
	Short: "List selectable dependencies for a platform version",
	Long: `List the dependency catalog of the service, filtered by platform
version. Defaults to the service's default version when none is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		md, err := initializr.New().Metadata(resolveServiceURL(depsServiceURL))
		if err != nil {
			return err
		}

		version := depsPlatformVersion
		if version == "" {
			version = md.DefaultVersion
		}

		group := ""
		for _, d := range md.DependenciesFor(version) {
			if d.Group != group {
				group = d.Group
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", group)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %s\n", d.ID, d.Name)
		}
		return nil
	},
}

func init() {
	dependenciesCmd.Flags().StringVar(&depsServiceURL, "service-url", "", "Initializr service base URL")
	dependenciesCmd.Flags().StringVar(&depsPlatformVersion, "platform-version", "", "Platform version to filter by")
	rootCmd.AddCommand(dependenciesCmd)
}
