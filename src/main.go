package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "mergington-activities/docs"
	"mergington-activities/src/config"
	"mergington-activities/src/database"
	"mergington-activities/src/jobs"
	"mergington-activities/src/logger"
	"mergington-activities/src/routes"
	"mergington-activities/src/services/activities"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// @title        Mergington High School Activities API
// @version      1.0
// @description  List extracurricular activities and manage student sign-ups.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// registry อยู่ในหน่วยความจำตลอดอายุ process
	var opts []activities.Option
	var redisClient *redis.Client
	var worker *asynq.Server

	if cfg.RosterEventsEnabled() {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURI)
		if err != nil {
			zl.Warn("⚠️ Redis not available, roster events disabled", zap.Error(err))
		} else {
			defer redisClient.Close()

			asynqClient := database.NewAsynqClient(cfg.RedisURI)
			defer asynqClient.Close()
			opts = append(opts, activities.WithNotifier(jobs.NewNotifier(asynqClient, zl)))

			srv, mux := jobs.NewWorker(cfg.RedisURI, zl)
			if err := srv.Start(mux); err != nil {
				zl.Fatal("❌ Failed to start roster worker", zap.Error(err))
			}
			worker = srv
			zl.Info("✅ Roster worker started", zap.String("redis", cfg.RedisURI))
		}
	}

	registry := activities.NewRegistry(activities.Seed(), opts...)

	app := routes.NewApp(routes.Deps{
		Registry:       registry,
		Redis:          redisClient,
		Log:            zl,
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			zl.Error("shutdown", zap.Error(err))
		}
	}()

	zl.Info("Server is running", zap.String("addr", cfg.ListenAddr()), zap.Int("activities", len(registry.Names())))
	if err := app.Listen(cfg.ListenAddr()); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("❌ Server stopped", zap.Error(err))
	}

	if worker != nil {
		worker.Shutdown()
	}
}
