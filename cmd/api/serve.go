package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"clinic-records/internal/common/pagination"
	"clinic-records/internal/config"
	hhttp "clinic-records/internal/handler/http"
	happointment "clinic-records/internal/handler/http/appointment"
	hauth "clinic-records/internal/handler/http/auth"
	hclinicservice "clinic-records/internal/handler/http/clinicservice"
	hdoctor "clinic-records/internal/handler/http/doctor"
	hfile "clinic-records/internal/handler/http/file"
	hinsurance "clinic-records/internal/handler/http/insurance"
	hmedicalrecord "clinic-records/internal/handler/http/medicalrecord"
	hmedicine "clinic-records/internal/handler/http/medicine"
	"clinic-records/internal/handler/http/middleware"
	hnurse "clinic-records/internal/handler/http/nurse"
	"clinic-records/internal/handler/http/requestid"
	"clinic-records/internal/observability/tracing"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 5 * time.Second
	// bodyOverhead is allowed on top of UploadMaxBytes for multipart framing.
	bodyOverhead = 64 << 10
)

func runServe(ctx context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	shutdownTracing, err := tracing.NewProvider("clinic-api", version)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	be, err := openBackend(ctx, cfg.Database, true)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		return err
	}
	defer func() {
		if err := be.close(context.Background()); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	store, err := openObjectStore(cfg.Storage)
	if err != nil {
		logger.Error("failed to configure object storage", slog.Any("error", err))
		return err
	}

	svcs := newServices(be.repos, store, cfg.UploadMaxBytes)
	handler := newHandler(cfg, logger, svcs, be.database, hhttp.PingCheck(store.Ping))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", version),
			slog.String("db_driver", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newHandler builds the routes and the middleware chain. Authentication
// skips the public health, metrics and swagger routes.
func newHandler(cfg *config.Config, logger *slog.Logger, svcs services, database, objects hhttp.Checker) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Checks: map[string]hhttp.Checker{
			"database":       database,
			"object_storage": objects,
		},
		Required: []string{"database"},
		Version:  version,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Database: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	registerRoutes(mux, svcs, cfg.Pagination.Params(), logger)

	return hhttp.Chain(mux,
		middleware.CORS(middleware.NewCORSConfig(cfg.CORS.AllowedOrigins, logger)),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
		hhttp.InputValidation(),
		hhttp.LimitRequestBody(cfg.UploadMaxBytes+bodyOverhead),
		hhttp.Timeout(requestTimeout),
		hauth.Authz([]byte(cfg.JWTSecret)),
	)
}

func registerRoutes(mux *http.ServeMux, svcs services, paginationCfg pagination.Config, logger *slog.Logger) {
	hmedicalrecord.Register(mux, svcs.medicalRecords, paginationCfg, logger)
	hdoctor.Register(mux, svcs.doctors, paginationCfg, logger)
	hnurse.Register(mux, svcs.nurses, paginationCfg, logger)
	hmedicine.Register(mux, svcs.medicines, paginationCfg, logger)
	happointment.Register(mux, svcs.appointments, paginationCfg, logger)
	hclinicservice.Register(mux, svcs.clinicServices, paginationCfg, logger)
	hinsurance.Register(mux, svcs.insurances, paginationCfg, logger)
	hfile.Register(mux, svcs.files, paginationCfg, logger)
}

func runMigrate(ctx context.Context) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver == config.DriverMemory {
		logger.Info("nothing to migrate for the in-memory store")
		return nil
	}
	be, err := openBackend(ctx, cfg.Database, true)
	if err != nil {
		return err
	}
	logger.Info("migration completed", slog.String("db_driver", cfg.Database.Driver))
	return be.close(ctx)
}
