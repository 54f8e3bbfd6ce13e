package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/initgen-labs/initgen/internal/initializr"
)

var versionsServiceURL string

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List platform versions offered by the service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		md, err := initializr.New().Metadata(resolveServiceURL(versionsServiceURL))
		if err != nil {
			return err
		}
		for _, v := range md.Versions {
			mark := " "
			if v.Default {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-16s %s\n", mark, v.ID, v.Name)
		}
		return nil
	},
}

func init() {
	versionsCmd.Flags().StringVar(&versionsServiceURL, "service-url", "", "Initializr service base URL")
	rootCmd.AddCommand(versionsCmd)
}
