package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jibingeo/next-auth/internal/server"
	"github.com/jibingeo/next-auth/internal/site"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds it on changes",
	Long: `The serve command performs an initial build of your site, then starts a local
web server for the output directory. It also watches the content and static
directories and rebuilds the site when they change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		builder := site.New(appConfig, logger)

		if _, err := builder.Build(ctx); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		var mu sync.Mutex
		rebuild := func() {
			mu.Lock()
			defer mu.Unlock()
			logger.Info("rebuilding site due to changes")
			if _, err := builder.Build(ctx); err != nil {
				logger.Error("rebuild failed", "err", err)
			}
		}

		eg, egctx := errgroup.WithContext(ctx)
		eg.Go(func() error {
			return site.Watch(egctx, logger, []string{appConfig.ContentDir, appConfig.StaticDir}, site.DefaultDebounce, rebuild)
		})
		eg.Go(func() error {
			return server.New(server.Config{Dir: appConfig.OutputDir, Port: serverPort, Logger: logger}).Serve(egctx)
		})
		return eg.Wait()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
