package commands

import (
	"fmt"

	"github.com/de-tools/report-builder/pkg/models/domain"
	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type BuildCmd struct {
	format   string
	strict   bool
	registry report.Registry
	reporter Reporter
}

func NewBuildCmd(registry report.Registry, reporter Reporter, defaultFormat string) *cobra.Command {
	bc := &BuildCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a report from individual settings",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.format, "format", defaultFormat, "Builder to use (e.g., pdf, excel, html)")
	cmd.Flags().BoolVar(&bc.strict, "strict", false, "Fail when title or date range is missing")
	registerFieldFlags(cmd.Flags())

	return cmd
}

func (bc *BuildCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	b, err := bc.registry.Create(bc.format)
	if err != nil {
		return fmt.Errorf("failed to create a builder for format: %w", err)
	}

	if err := report.ApplySettings(b, changedFieldFlags(cmd.Flags())); err != nil {
		return err
	}

	r := b.Build()
	if bc.strict {
		if err := report.Validate(r); err != nil {
			return fmt.Errorf("report is incomplete: %w", err)
		}
	}

	logger.Debug().Str("format", bc.format).Msg("report built")
	r.Generate(ctx)

	return bc.reporter.Handle(r)
}

// registerFieldFlags adds one flag per report field except format, which selects
// the builder instead.
func registerFieldFlags(flags *pflag.FlagSet) {
	for _, f := range domain.Fields() {
		if f == domain.FieldFormat {
			continue
		}
		switch {
		case f.IsFlag():
			flags.Bool(f.String(), false, fmt.Sprintf("Set %s", f))
		case f == domain.FieldColumns || f == domain.FieldFilters:
			flags.String(f.String(), "", fmt.Sprintf("Comma separated %s", f))
		case f == domain.FieldStartDate || f == domain.FieldEndDate:
			flags.String(f.String(), "", fmt.Sprintf("Report %s (%s)", f, report.DateLayout))
		default:
			flags.String(f.String(), "", fmt.Sprintf("Report %s", f))
		}
	}
}

// changedFieldFlags collects only the field flags given on the command line, so
// untouched fields keep the builder's defaults.
func changedFieldFlags(flags *pflag.FlagSet) map[string]string {
	settings := make(map[string]string)
	flags.Visit(func(fl *pflag.Flag) {
		f, err := domain.ParseField(fl.Name)
		if err != nil || f == domain.FieldFormat {
			return
		}
		settings[fl.Name] = fl.Value.String()
	})
	return settings
}
