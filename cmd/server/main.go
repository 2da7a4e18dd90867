// Package main provides the entry point for the Tradecast API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/tradecast/internal/analysis"
	"github.com/yourusername/tradecast/internal/api"
	"github.com/yourusername/tradecast/internal/config"
	"github.com/yourusername/tradecast/internal/logger"
	"github.com/yourusername/tradecast/internal/metrics"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var (
	configFile string
	appLog     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
}

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Tradecast analysis API server",
	Long:  `Serves trade CSV ingestion and bootstrap Monte Carlo analysis over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	loaded, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	return nil
}

func runServer() error {
	appLog.WithFields(logrus.Fields{
		"version":     Version,
		"commit":      GitCommit,
		"environment": cfg.App.Environment,
		"port":        cfg.Server.Port,
	}).Info("Tradecast API server starting")

	metrics.InitRegistry()

	analyzer := analysis.NewAnalyzer(appLog, analysis.Options{
		MaxElements: cfg.Analysis.MaxEnsembleElements,
	})
	server := api.NewServer(cfg, appLog, analyzer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.WithField("signal", sig.String()).Info("Shutdown signal received")
		cancel()
	}()

	return server.Start(ctx)
}
