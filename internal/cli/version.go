package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/ymstat/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Info())
		return nil
	},
}
