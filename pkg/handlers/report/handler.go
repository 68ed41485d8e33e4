package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/de-tools/report-builder/pkg/adapters"
	"github.com/de-tools/report-builder/pkg/models/api"
	"github.com/de-tools/report-builder/pkg/models/domain"
	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PresetService resolves named presets; *report.Resolver implements it.
type PresetService interface {
	List(ctx context.Context) ([]report.PresetInfo, error)
	Apply(ctx context.Context, name string, b report.Builder) error
}

type Handler struct {
	registry      report.Registry
	presets       PresetService
	defaultFormat string
}

func NewHandler(registry report.Registry, presets PresetService, defaultFormat string) *Handler {
	if defaultFormat == "" {
		defaultFormat = "pdf"
	}
	return &Handler{
		registry:      registry,
		presets:       presets,
		defaultFormat: defaultFormat,
	}
}

func (h *Handler) ListFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.registry.ListFormats())
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	presets, err := h.presets.List(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list presets")
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	response := make([]api.Preset, 0, len(presets))
	for _, p := range presets {
		response = append(response, api.Preset{Name: p.Name, Source: p.Source})
	}
	writeJSON(ctx, w, http.StatusOK, response)
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	b, ok := h.newBuilder(ctx, w, req.Format)
	if !ok {
		return
	}

	if err := report.ApplySettings(b, req.Settings); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	h.finish(w, r, b)
}

func (h *Handler) CreatePresetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	preset := chi.URLParam(r, "preset")

	b, ok := h.newBuilder(ctx, w, r.URL.Query().Get("format"))
	if !ok {
		return
	}

	if err := h.presets.Apply(ctx, preset, b); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, report.ErrUnknownPreset) {
			status = http.StatusNotFound
		}
		writeError(ctx, w, status, err)
		return
	}

	h.finish(w, r, b)
}

func (h *Handler) newBuilder(ctx context.Context, w http.ResponseWriter, format string) (report.Builder, bool) {
	if format == "" {
		format = h.defaultFormat
	}
	b, err := h.registry.Create(format)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return nil, false
	}
	return b, true
}

// finish builds the report, validates it when ?strict=true and generates it.
func (h *Handler) finish(w http.ResponseWriter, r *http.Request, b report.Builder) {
	ctx := r.Context()

	strict := false
	if raw := r.URL.Query().Get("strict"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(ctx, w, http.StatusBadRequest, errors.New("invalid 'strict' value. Expected true or false"))
			return
		}
		strict = v
	}

	var (
		built *domain.Report
		err   error
	)
	if strict {
		built, err = report.BuildValidated(b)
	} else {
		built = b.Build()
	}
	if err != nil {
		writeJSON(ctx, w, http.StatusUnprocessableEntity, api.Error{
			Message:       "report is incomplete",
			MissingFields: adapters.MapFieldsDomainToApi(report.MissingFields(err)),
		})
		return
	}

	built.Generate(ctx)
	writeJSON(ctx, w, http.StatusOK, adapters.MapReportDomainToApi(built))
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	writeJSON(ctx, w, status, api.Error{Message: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Int("status", status).
			Msg("failed to encode response")
	}
}
