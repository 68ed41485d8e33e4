package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/report-builder/pkg/models/domain"
	"github.com/de-tools/report-builder/pkg/runtime/terminal/export"
	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/de-tools/report-builder/pkg/terminal/commands"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type reporterFunc func(r *domain.Report) error

func (f reporterFunc) Handle(r *domain.Report) error {
	return f(r)
}

// CLI represents the command-line interface
type CLI struct {
	registry      report.Registry
	director      *report.Director
	presets       *report.Resolver
	defaultFormat string
	output        io.Writer
	logger        zerolog.Logger
	rootCmd       *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry      report.Registry
	Catalog       report.Catalog
	DefaultFormat string
	Output        io.Writer
	Logger        *zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = report.NewDefaultRegistry()
	}
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = "pdf"
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	director := report.NewDirector()
	cli := &CLI{
		registry:      opts.Registry,
		director:      director,
		presets:       report.NewResolver(director, opts.Catalog),
		defaultFormat: opts.DefaultFormat,
		output:        opts.Output,
		logger:        logger,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

// SetArgs overrides the command line arguments, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	var output string

	table := export.NewReporter(cli.output)
	summary := NewReporter(cli.output)
	reporter := reporterFunc(func(r *domain.Report) error {
		if output == "summary" {
			return summary.Handle(r)
		}
		return table.Handle(r)
	})

	cmd := &cobra.Command{
		Use:           "reportgen",
		Short:         "Report configuration builder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output style: table or summary")

	cmd.AddCommand(commands.NewBuildCmd(cli.registry, reporter, cli.defaultFormat))
	cmd.AddCommand(commands.NewPresetCmd(cli.registry, cli.presets, reporter, cli.defaultFormat))
	cmd.AddCommand(commands.NewPresetsCmd(cli.presets))
	cmd.AddCommand(commands.NewFormatsCmd(cli.registry))
	cmd.AddCommand(commands.NewDemoCmd(cli.director, reporter))

	return cmd
}
