package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewPresetsCmd(presets *report.Resolver) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available report presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := presets.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, p := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", p.Name, p.Source)
			}
			return nil
		},
	}
}

func NewFormatsCmd(registry report.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported report formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			formats := registry.ListFormats()
			if len(formats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No report formats registered")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Supported formats:\n%s\n", strings.Join(formats, "\n"))
			return nil
		},
	}
}
