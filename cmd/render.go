package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jibingeo/next-auth/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Writes the landing page HTML to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return site.New(appConfig, logger).RenderLanding(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
