package report

import (
	"context"
	"errors"
	"fmt"
)

const (
	SourceBuiltin = "builtin"
	SourceCatalog = "catalog"
)

// Catalog is an external source of named presets, e.g. an INI preset file.
type Catalog interface {
	GetPresets(ctx context.Context) ([]string, error)
	Apply(ctx context.Context, preset string, b Builder) error
}

type PresetInfo struct {
	Name   string
	Source string
}

// Resolver looks presets up in the director first and then in the optional catalog.
type Resolver struct {
	director *Director
	catalog  Catalog
}

func NewResolver(director *Director, catalog Catalog) *Resolver {
	if director == nil {
		director = NewDirector()
	}
	return &Resolver{director: director, catalog: catalog}
}

func (r *Resolver) List(ctx context.Context) ([]PresetInfo, error) {
	var presets []PresetInfo
	builtin := make(map[string]struct{})
	for _, name := range r.director.Presets() {
		builtin[name] = struct{}{}
		presets = append(presets, PresetInfo{Name: name, Source: SourceBuiltin})
	}

	if r.catalog == nil {
		return presets, nil
	}

	names, err := r.catalog.GetPresets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog presets: %w", err)
	}
	for _, name := range names {
		// builtin presets shadow catalog entries with the same name
		if _, ok := builtin[name]; ok {
			continue
		}
		presets = append(presets, PresetInfo{Name: name, Source: SourceCatalog})
	}
	return presets, nil
}

func (r *Resolver) Apply(ctx context.Context, name string, b Builder) error {
	err := r.director.Apply(name, b)
	if err == nil || !errors.Is(err, ErrUnknownPreset) || r.catalog == nil {
		return err
	}
	return r.catalog.Apply(ctx, name, b)
}
