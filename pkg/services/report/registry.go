package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var ErrUnknownFormat = errors.New("unknown report format")

// BuilderFactory creates a fresh, independently owned Builder.
type BuilderFactory func() Builder

// Registry manages builder factories keyed by format name
type Registry interface {
	// Register adds a new format builder factory
	Register(format string, factory BuilderFactory) error
	// Create instantiates a builder for the specified format
	Create(format string) (Builder, error)
	// ListFormats returns the registered format names, sorted
	ListFormats() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]BuilderFactory
}

// NewRegistry creates an empty builder registry
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]BuilderFactory),
	}
}

// NewDefaultRegistry registers the pdf, excel and html builders.
func NewDefaultRegistry() Registry {
	r := NewRegistry()
	_ = r.Register("pdf", NewPDFBuilder)
	_ = r.Register("excel", NewExcelBuilder)
	_ = r.Register("html", NewHTMLBuilder)
	return r
}

func (r *registry) Register(format string, factory BuilderFactory) error {
	key := normalizeFormat(format)
	if key == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("format %q is already registered", format)
	}

	r.factories[key] = factory
	return nil
}

func (r *registry) Create(format string) (Builder, error) {
	r.mu.RLock()
	factory, exists := r.factories[normalizeFormat(format)]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return factory(), nil
}

func (r *registry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for format := range r.factories {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
