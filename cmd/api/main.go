package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fharvey/fileaccess-ms-go/internal/config"
	"github.com/fharvey/fileaccess-ms-go/internal/handler/api"
	"github.com/fharvey/fileaccess-ms-go/internal/logger"
	cMiddleware "github.com/fharvey/fileaccess-ms-go/internal/middleware"
	"github.com/fharvey/fileaccess-ms-go/internal/port"
	"github.com/fharvey/fileaccess-ms-go/internal/storage"
	fileSvc "github.com/fharvey/fileaccess-ms-go/internal/usecase/file"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	strg := initStorage(ctx, cfg)
	initBucket(ctx, strg, cfg.BucketName)

	r := initRouter(ctx)

	resolverSvc := fileSvc.NewAccessResolver(strg, cfg.BucketName)
	r.Get("/{fileName}", api.ResolveAccessHandler(resolverSvc))

	listenRouter(ctx, r, cfg)
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithRequestID())

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.S3Endpoint,
		cfg.AWSRegion,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3UseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize object store client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBucket(ctx context.Context, strg port.Storage, bucket string) {
	if err := strg.InitBucket(bucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", bucket, err)
		os.Exit(1)
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 File access gateway listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}
