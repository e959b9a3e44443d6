package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jibingeo/next-auth/internal/config"
	"github.com/jibingeo/next-auth/internal/logging"
)

var (
	cfgFile   string
	debug     bool
	appConfig config.Config
	logger    = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "www",
	Short: "Builds and serves the NextAuth.js website",
	Long: `www renders the NextAuth.js landing page and the markdown documentation
under './content/' into a static site, copying './static/' alongside it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return initializeConfig()
	},
}

// Execute runs the root command, cancelling its context on SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func setupLogger() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger = logging.New(level)
}

func initializeConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Source == "" {
		logger.Info("no config file found, using defaults and environment")
	} else {
		logger.Debug("using config file", "path", cfg.Source)
	}
	appConfig = cfg
	return nil
}
