package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jibingeo/next-auth/internal/config"
	"github.com/jibingeo/next-auth/internal/site"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates a starter config.yaml and getting started page",
	Args:  cobra.NoArgs,
	// Replaces the root hook: the config file may not exist yet.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = "config.yaml"
		}
		created, err := site.Init(path, config.Default(), initForce)
		if err != nil {
			return err
		}
		for _, f := range created {
			logger.Info("created", "path", f)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	rootCmd.AddCommand(initCmd)
}
