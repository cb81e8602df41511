// Package main is the entry point for the parkslot booking API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"

	"github.com/pkordes/parkslot-booking/backend/internal/config"
	"github.com/pkordes/parkslot-booking/backend/internal/events"
	"github.com/pkordes/parkslot-booking/backend/internal/handler"
	"github.com/pkordes/parkslot-booking/backend/internal/middleware"
	"github.com/pkordes/parkslot-booking/backend/internal/redirect"
	"github.com/pkordes/parkslot-booking/backend/internal/repo"
	"github.com/pkordes/parkslot-booking/backend/internal/service"
	"github.com/pkordes/parkslot-booking/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	if err := migrate(cfg.DatabaseURL, logger); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Services ---------------------------------------------------------
	hub := events.NewHub(logger)
	drafts := service.NewDraftService(
		repo.NewAvailabilityRepo(pool),
		repo.NewVehicleRepo(pool),
		hub,
		logger,
		cfg.DraftTTL,
	)
	cancellations := service.NewCancellationService(repo.NewSlotRepo(pool), logger, cfg.DraftTTL)

	sweeper, err := service.NewSweeper(cfg.SweepSchedule, map[string]service.Expirer{
		"drafts":        drafts,
		"cancellations": cancellations,
	}, logger)
	if err != nil {
		slog.Error("invalid sweep schedule", "error", err)
		os.Exit(1)
	}
	sweeper.Start()

	login, err := redirect.New(cfg.LoginURL)
	if err != nil {
		slog.Error("invalid login URL", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	handler.NewServer(drafts, cancellations, hub, login, logger).Register(r)

	// --- HTTP Server ------------------------------------------------------
	// No WriteTimeout: event websockets stay open for the life of a draft.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	select {
	case <-sweeper.Stop().Done():
	case <-ctx.Done():
	}

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate brings the schema up to date over a short-lived database/sql
// connection, which is what goose needs.
func migrate(dsn string, log *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return migrations.Up(ctx, db, log)
}
