// Package app wires configuration, storage, services and HTTP routing into a
// runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/aidledger/internal/approval"
	"github.com/mmynk/aidledger/internal/auth"
	"github.com/mmynk/aidledger/internal/config"
	"github.com/mmynk/aidledger/internal/distribution"
	"github.com/mmynk/aidledger/internal/draft"
	"github.com/mmynk/aidledger/internal/middleware"
	"github.com/mmynk/aidledger/internal/recipient"
	"github.com/mmynk/aidledger/internal/service"
	"github.com/mmynk/aidledger/internal/storage"
	"github.com/mmynk/aidledger/pkg/proto/protoconnect"
)

const shutdownTimeout = 10 * time.Second

// App is a configured AidLedger server.
type App struct {
	cfg     *config.Config
	store   storage.Store
	drafts  *draft.Registry
	handler http.Handler
	logger  *slog.Logger
}

// New builds the services on top of store. The caller keeps ownership of
// store; Close releases only what New created.
func New(cfg *config.Config, store storage.Store, logger *slog.Logger) *App {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)
	resolver := recipient.NewResolver(store, recipient.WithLogger(logger))
	builder := distribution.NewBuilder(resolver,
		distribution.WithReconcile(cfg.Allocation.ReconcileRounding),
		distribution.WithLogger(logger),
	)
	drafts := draft.NewRegistry(cfg.Drafts.TTL, cfg.Drafts.SweepInterval, draft.WithLogger(logger))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)
	limiter := middleware.NewRateLimiter(cfg.Auth.LoginRate, cfg.Auth.LoginBurst,
		protoconnect.AuthServiceRegisterProcedure,
		protoconnect.AuthServiceLoginProcedure,
	)

	// Outermost first: metrics see every call, including throttled and
	// unauthenticated ones.
	opts := connect.WithInterceptors(
		metrics.Interceptor(),
		limiter.Interceptor(),
		middleware.RequireAuth(jwtManager,
			protoconnect.AuthServiceRegisterProcedure,
			protoconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(logger),
	)

	distributions := service.NewDistributionService(store, builder, resolver, logger)
	approvals := approval.NewService(store, approval.WithLogger(logger))

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Use(corsMiddleware(cfg.Server.AllowedOrigins))

	mount := func(path string, h http.Handler) { r.Handle(path+"*", h) }
	mount(protoconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, store, logger), opts))
	mount(protoconnect.NewRegistryServiceHandler(service.NewRegistryService(store, resolver, logger), opts))
	mount(protoconnect.NewDraftServiceHandler(service.NewDraftService(drafts, store, resolver, distributions, logger), opts))
	mount(protoconnect.NewDistributionServiceHandler(distributions, opts))
	mount(protoconnect.NewReportServiceHandler(service.NewReportService(store, store, resolver, logger), opts))
	mount(protoconnect.NewNeedServiceHandler(service.NewNeedService(store, logger), opts))
	mount(protoconnect.NewApprovalServiceHandler(service.NewApprovalService(approvals, logger), opts))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuthHTTP(jwtManager))
		service.NewExportHandler(store, store, resolver, logger).Routes(r)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	if cfg.Server.StaticPath != "" {
		static, err := staticHandler(cfg.Server.StaticPath)
		if err != nil {
			logger.Warn("Static files disabled", "path", cfg.Server.StaticPath, "error", err)
		} else {
			logger.Info("Serving static files", "path", cfg.Server.StaticPath)
			r.NotFound(static.ServeHTTP)
		}
	}

	return &App{
		cfg:     cfg,
		store:   store,
		drafts:  drafts,
		handler: h2c.NewHandler(r, &http2.Server{}),
		logger:  logger,
	}
}

// Handler returns the root HTTP handler. It speaks HTTP/1.1 and h2c.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Close stops background work.
func (a *App) Close() {
	a.drafts.Close()
}

// Serve listens on the configured port until ctx is cancelled, then shuts
// down gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Server.Port),
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
