package config

import (
	"context"
	"fmt"
	"sort"

	"github.com/de-tools/report-builder/pkg/services/report"
	"gopkg.in/ini.v1"
)

// PresetCatalog exposes named report presets loaded from an INI file. Each section
// with at least one key is a preset; its keys are report field keys.
type PresetCatalog interface {
	GetPresets(ctx context.Context) ([]string, error)
	GetSettings(ctx context.Context, preset string) (map[string]string, error)
	Apply(ctx context.Context, preset string, b report.Builder) error
}

type iniCatalog struct {
	cfg *ini.File
}

func NewPresetCatalog(path string) (PresetCatalog, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load preset catalog: %w", err)
	}
	return &iniCatalog{cfg: cfg}, nil
}

// NewPresetCatalogFromBytes is NewPresetCatalog for in-memory INI content.
func NewPresetCatalogFromBytes(data []byte) (PresetCatalog, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse preset catalog: %w", err)
	}
	return &iniCatalog{cfg: cfg}, nil
}

func (c *iniCatalog) GetPresets(_ context.Context) ([]string, error) {
	var presets []string
	for _, section := range c.cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		if len(section.Keys()) > 0 {
			presets = append(presets, section.Name())
		}
	}
	sort.Strings(presets)
	return presets, nil
}

func (c *iniCatalog) GetSettings(_ context.Context, preset string) (map[string]string, error) {
	section, err := c.cfg.GetSection(preset)
	if err != nil || preset == ini.DefaultSection || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("%w: %q", report.ErrUnknownPreset, preset)
	}
	return section.KeysHash(), nil
}

func (c *iniCatalog) Apply(ctx context.Context, preset string, b report.Builder) error {
	settings, err := c.GetSettings(ctx, preset)
	if err != nil {
		return err
	}
	if err := report.ApplySettings(b, settings); err != nil {
		return fmt.Errorf("preset %q: %w", preset, err)
	}
	return nil
}
