package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"category_service/config"
	"category_service/internal/app"
	"category_service/pkg/logger"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		envFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and gRPC servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.New()
			log.Info("Starting Category Service...")

			cfg, err := config.LoadConfig(log, envFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logger.SetLevel(log, cfg.LogLevel)
			log.Infof("Log level set to: %s", log.GetLevel().String())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application, err := app.New(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("failed to initialise service: %w", err)
			}
			defer func() {
				if err := application.Close(); err != nil {
					log.Errorf("Failed to close resources: %v", err)
				}
			}()

			return application.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "overrides LOG_LEVEL")
	return cmd
}
