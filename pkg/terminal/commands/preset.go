package commands

import (
	"fmt"

	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/spf13/cobra"
)

type PresetCmd struct {
	name     string
	format   string
	registry report.Registry
	presets  *report.Resolver
	reporter Reporter
}

func NewPresetCmd(registry report.Registry, presets *report.Resolver, reporter Reporter, defaultFormat string) *cobra.Command {
	pc := &PresetCmd{registry: registry, presets: presets, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Build a report from a named preset",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.name, "name", "", "Preset to apply (e.g., annual)")
	cmd.Flags().StringVar(&pc.format, "format", defaultFormat, "Builder to use (e.g., pdf, excel, html)")

	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (pc *PresetCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	b, err := pc.registry.Create(pc.format)
	if err != nil {
		return fmt.Errorf("failed to create a builder for format: %w", err)
	}

	if err := pc.presets.Apply(ctx, pc.name, b); err != nil {
		return fmt.Errorf("failed to apply preset %s: %w", pc.name, err)
	}

	r := b.Build()
	r.Generate(ctx)

	return pc.reporter.Handle(r)
}
