package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/de-tools/report-builder/pkg/server"
	"github.com/de-tools/report-builder/pkg/services/config"
	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the report builder",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "reportgen.yaml",
		"Path to the reportgen configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	var catalog report.Catalog
	if cfg.PresetCatalog != "" {
		catalog, err = config.NewPresetCatalog(cfg.PresetCatalog)
		if err != nil {
			return fmt.Errorf("failed to create preset catalog: %w", err)
		}
		logger.Info().Msgf("Preset catalog found at `%s` successfully loaded.", cfg.PresetCatalog)
	}

	resolver := report.NewResolver(report.NewDirector(), catalog)
	presets, err := resolver.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}
	logger.Info().Msgf("Found the following presets:")
	for _, preset := range presets {
		logger.Info().Msgf("Name: `%s`, Source: `%s`", preset.Name, preset.Source)
	}

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Registry:      report.NewDefaultRegistry(),
			Presets:       resolver,
			DefaultFormat: cfg.DefaultFormat,
			Logger:        logger,
		},
	})

	return api.Start()
}
