package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-builder/pkg/runtime/terminal"
	"github.com/de-tools/report-builder/pkg/services/config"
	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/rs/zerolog"
)

const defaultConfigPath = "reportgen.yaml"

func main() {
	cfgPath := os.Getenv("REPORTGEN_CONFIG")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	var catalog report.Catalog
	if cfg.PresetCatalog != "" {
		catalog, err = config.NewPresetCatalog(cfg.PresetCatalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry:      report.NewDefaultRegistry(),
		Catalog:       catalog,
		DefaultFormat: cfg.DefaultFormat,
		Output:        os.Stdout,
		Logger:        &logger,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes human readable events to stderr so stdout stays the report output.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
