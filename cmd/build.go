package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jibingeo/next-auth/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site",
	Long: `The build command renders the landing page and every markdown file in the
content directory, writes the theme stylesheets, copies static assets and
generates the site in the configured output directory (default './public/').`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := site.New(appConfig, logger).Build(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
