package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arzan03/MedicineShop/internal/config"
	"github.com/arzan03/MedicineShop/internal/db"
	"github.com/arzan03/MedicineShop/internal/handlers"
	"github.com/arzan03/MedicineShop/internal/storage"
	"github.com/arzan03/MedicineShop/internal/tracing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return err
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var tracer trace.Tracer
	if cfg.Tracing.Enabled() {
		traceProvider, err := tracing.InitTracing(ctx, cfg.Tracing.CollectorHost, cfg.Tracing.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := traceProvider.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("tracer shutdown failed")
			}
		}()
		tracer = traceProvider.Tracer(cfg.Tracing.ServiceName)
	}

	// Connect to MongoDB
	client, err := db.ConnectMongoDB(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
			return
		}
		log.Info().Msg("disconnected from MongoDB")
	}()
	stores := db.NewStores(client.Database(cfg.Mongo.Database))

	deps := handlers.Deps{
		Categories:   stores.Categories,
		Users:        stores.Users,
		Products:     stores.Products,
		Banners:      stores.Banners,
		Testimonials: stores.Testimonials,
		Health:       &handlers.HealthHandler{Mongo: db.NewPinger(client)},
	}

	if cfg.Archive.Enabled() {
		minioClient, err := storage.NewMinioClient(ctx, cfg.Archive)
		if err != nil {
			return err
		}
		archive := storage.NewArchive(minioClient, cfg.Archive.Bucket, cfg.Archive.Workers)
		// runs before the MongoDB disconnect, after the HTTP server stopped
		defer archive.Close()
		deps.Mirror = archive
		deps.Health.Archive = archive
	}

	app := handlers.NewApp(deps, handlers.Options{
		Logger:       log.Logger,
		BodyLimitMB:  cfg.Server.BodyLimitMB,
		CORSOrigins:  cfg.Server.CORSOrigins,
		QueryTimeout: cfg.Mongo.QueryTimeout,
		Tracer:       tracer,
	})

	listenErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server has started")
		listenErr <- app.Listen(":" + cfg.Server.Port)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped gracefully")
	return nil
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
