package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/report-builder/pkg/models/api"
	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPresets struct {
	mock.Mock
}

func (m *mockPresets) List(ctx context.Context) ([]report.PresetInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.PresetInfo), args.Error(1)
}

func (m *mockPresets) Apply(ctx context.Context, name string, b report.Builder) error {
	args := m.Called(ctx, name, b)
	return args.Error(0)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Registry:      report.NewDefaultRegistry(),
			Presets:       report.NewResolver(report.NewDirector(), nil),
			DefaultFormat: "pdf",
			Logger:        logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	annualStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	annualEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name:           "ListFormats",
			method:         http.MethodGet,
			path:           "/api/v1/formats",
			expectedStatus: http.StatusOK,
			expected:       []string{"excel", "html", "pdf"},
			parseResponse:  unmarshalResponse[[]string](),
		},
		{
			name:           "ListPresets",
			method:         http.MethodGet,
			path:           "/api/v1/presets",
			expectedStatus: http.StatusOK,
			expected: []api.Preset{
				{Name: "annual", Source: "builtin"},
				{Name: "monthly", Source: "builtin"},
				{Name: "quarterly", Source: "builtin"},
			},
			parseResponse: unmarshalResponse[[]api.Preset](),
		},
		{
			name:           "CreateReport",
			method:         http.MethodPost,
			path:           "/api/v1/reports",
			body:           `{"format":"excel","settings":{"title":"Quarterly","columns":"Seller,Region","include_totals":"true"}}`,
			expectedStatus: http.StatusOK,
			expected: api.Report{
				Title:   "Quarterly",
				Format:  "Excel",
				Columns: []string{"Seller", "Region"},
				Filters: []string{},
				Layout:  api.Layout{IncludeTotals: true},
			},
			parseResponse: unmarshalResponse[api.Report](),
		},
		{
			name:           "CreateReport_DefaultFormat",
			method:         http.MethodPost,
			path:           "/api/v1/reports",
			body:           `{}`,
			expectedStatus: http.StatusOK,
			expected:       api.Report{Format: "PDF", Columns: []string{}, Filters: []string{}},
			parseResponse:  unmarshalResponse[api.Report](),
		},
		{
			name:           "CreateReport_Strict",
			method:         http.MethodPost,
			path:           "/api/v1/reports?strict=true",
			body:           `{"settings":{"title":"Weekly"}}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expected: api.Error{
				Message:       "report is incomplete",
				MissingFields: []string{"start_date", "end_date"},
			},
			parseResponse: unmarshalResponse[api.Error](),
		},
		{
			name:           "CreateReport_InvalidStrict",
			method:         http.MethodPost,
			path:           "/api/v1/reports?strict=maybe",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expected:       api.Error{Message: "invalid 'strict' value. Expected true or false"},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name:           "CreateReport_InvalidBody",
			method:         http.MethodPost,
			path:           "/api/v1/reports",
			body:           `{"format":`,
			expectedStatus: http.StatusBadRequest,
			expected:       api.Error{Message: "invalid request body"},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name:           "CreateReport_UnknownFormat",
			method:         http.MethodPost,
			path:           "/api/v1/reports",
			body:           `{"format":"docx"}`,
			expectedStatus: http.StatusBadRequest,
			expected:       api.Error{Message: `unknown report format: "docx"`},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name:           "CreateReport_UnknownField",
			method:         http.MethodPost,
			path:           "/api/v1/reports",
			body:           `{"settings":{"colour":"red"}}`,
			expectedStatus: http.StatusBadRequest,
			expected:       api.Error{Message: `unknown report field: "colour"`},
			parseResponse:  unmarshalResponse[api.Error](),
		},
		{
			name:           "CreatePresetReport_Annual",
			method:         http.MethodPost,
			path:           "/api/v1/presets/annual/reports?format=html&strict=true",
			expectedStatus: http.StatusOK,
			expected: api.Report{
				Title:   "Annual Sales",
				Format:  "HTML",
				Period:  api.TimePeriod{Start: &annualStart, End: &annualEnd},
				Columns: []string{"Product", "Quantity", "Value"},
				Filters: []string{},
				Layout: api.Layout{
					IncludeHeader: true,
					HeaderText:    "Sales Report",
					IncludeFooter: true,
					FooterText:    "Confidential",
					IncludeCharts: true,
					ChartType:     "Pie",
					IncludeTotals: true,
					Orientation:   "Landscape",
					PageSize:      "A4",
				},
			},
			parseResponse: unmarshalResponse[api.Report](),
		},
		{
			name:           "CreatePresetReport_Unknown",
			method:         http.MethodPost,
			path:           "/api/v1/presets/weekly/reports",
			expectedStatus: http.StatusNotFound,
			expected:       api.Error{Message: `unknown report preset: "weekly"`},
			parseResponse:  unmarshalResponse[api.Error](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, bytes.NewBufferString(tc.body))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_PresetFailures(t *testing.T) {
	presets := new(mockPresets)
	presets.On("List", mock.Anything).Return(nil, errors.New("catalog unavailable"))
	presets.On("Apply", mock.Anything, "regional", mock.Anything).
		Return(report.ErrInvalidValue)

	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Registry: report.NewDefaultRegistry(),
			Presets:  presets,
			Logger:   zerolog.New(zerolog.NewTestWriter(t)),
		},
	})

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("apply", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/presets/regional/reports", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	presets.AssertExpectations(t)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
