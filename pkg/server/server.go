package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/report-builder/pkg/handlers/report"
	"github.com/de-tools/report-builder/pkg/services/report"

	reportmiddleware "github.com/de-tools/report-builder/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Registry      report.Registry
	Presets       handlers.PresetService
	DefaultFormat string
	Logger        zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the report API routes under /api/v1.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	reportHandler := handlers.NewHandler(deps.Registry, deps.Presets, deps.DefaultFormat)

	router := chi.NewRouter()

	router.Use(reportmiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/formats", reportHandler.ListFormats)
		r.Get("/presets", reportHandler.ListPresets)
		r.Post("/reports", reportHandler.CreateReport)
		r.Post("/presets/{preset}/reports", reportHandler.CreatePresetReport)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	router := ConfigureRouter(config)

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: shutdownTimeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
