package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/tendant/simple-drop/pkg/simpledrop"
	"github.com/tendant/simple-drop/pkg/simpledrop/api"
	"github.com/tendant/simple-drop/pkg/simpledrop/metrics"
	"github.com/tendant/simple-drop/pkg/simpledrop/sweep"
)

func main() {
	// Local development convenience; absent .env is fine.
	godotenv.Load()

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		slog.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}

	store, err := NewBlobStore(config)
	if err != nil {
		slog.Error("Failed to initialize storage backend", "type", config.Storage.Type, "err", err)
		os.Exit(1)
	}

	svc, err := simpledrop.New(
		simpledrop.WithBlobStore(store),
		simpledrop.WithMetrics(metrics.NewProm("simpledrop")),
	)
	if err != nil {
		slog.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Retention sweep runs for the life of the process, independent of
	// request traffic.
	sweeper := sweep.New(svc, config.Sweep.Interval, config.Sweep.MaxAge)
	go sweeper.Run(ctx)

	filesHandler := api.NewFilesHandler(svc, api.Config{
		APIKey:         config.ApiKey,
		MaxUploadBytes: config.MaxUploadBytes,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())
	r.Mount("/", filesHandler.Routes())

	httpServer := &http.Server{
		Addr:    ":" + config.Port,
		Handler: r,
	}

	go func() {
		slog.Info("Simple Drop server starting",
			"port", config.Port,
			"storage", config.Storage.Type,
			"sweep_interval", config.Sweep.Interval,
			"retention_max_age", config.Sweep.MaxAge)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "err", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
