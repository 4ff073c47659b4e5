package server

import (
	"context"
	"log/slog"
	"net/http"

	"liiga-goalie-service/internal/config"
	"liiga-goalie-service/internal/coordinator"
	httpserver "liiga-goalie-service/internal/http"
	"liiga-goalie-service/internal/http/handlers"
	"liiga-goalie-service/internal/http/middleware"
	"liiga-goalie-service/internal/logging"
	"liiga-goalie-service/internal/metrics"
	"liiga-goalie-service/internal/providers"
	"liiga-goalie-service/internal/sensor"
)

var metricsSetup = metrics.Setup

// Server owns the refresh coordinator, the sensor views, and the HTTP
// surface, and runs them until the context is cancelled.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	views         []*sensor.View
	httpServer    httpServer
	metricsServer httpServer
	coordinator   refreshLoop
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and coordinator wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.GoalieProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider, provider), cfg.MaxRetries, cfg.RetryBackoff)
	}

	coord := coordinator.New(provider, cfg.Categories, cfg.TopN, logger, recorder, cfg.PollInterval)
	views := buildViews(cfg.Categories, coord)
	httpSrv := buildHTTPServer(cfg, views, logger, recorder, coord)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		views:         views,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		coordinator:   coord,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, loop refreshLoop) *Server {
	return &Server{
		cfg:         cfg,
		logger:      logger,
		httpServer:  httpSrv,
		coordinator: loop,
	}
}

func buildViews(categories []string, source sensor.Source) []*sensor.View {
	views := make([]*sensor.View, 0, len(categories))
	for _, category := range categories {
		views = append(views, sensor.NewView(category, source))
	}
	return views
}

func buildHTTPServer(cfg config.Config, views []*sensor.View, logger *slog.Logger, recorder *metrics.Recorder, loop refreshLoop) httpServer {
	var statusFn func() coordinator.Status
	if loop != nil {
		statusFn = loop.Status
	}

	handler := handlers.NewHandler(views, logger, statusFn)
	router := httpserver.NewRouter(handler)
	// Mount the on-demand refresh endpoint only when a token is configured.
	if cfg.AdminToken != "" && loop != nil {
		admin := handlers.NewAdminHandler(loop, cfg.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/refresh", admin.Refresh)
		}
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the coordinator and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.coordinator.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.coordinator.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop coordinator", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.MetricsEnabled,
		Port:         cfg.MetricsPort,
		ServiceName:  cfg.OtelServiceName,
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
