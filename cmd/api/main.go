package main

// @title LocAbility API
// @version 1.0.0
// @description Crowdsourced accessibility map service. Citizens report accessibility spots (ramps, elevators, accessible entrances and more), vote on their condition, and query neighborhoods for nearby spots and an aggregate 0-100 accessibility score.
// @description
// @description Main capabilities:
// @description - Spot lifecycle: submit, update, delete, upvote/downvote
// @description - Proximity queries: spots within a radius, nearest first
// @description - Area accessibility score combining quantity, condition and variety
// @description - OpenStreetMap import with near-duplicate suppression
// @description - Collection statistics

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/docs"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/classify"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/config"
	httpDelivery "github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/delivery/http"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/delivery/http/handler"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/infrastructure/overpass"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/logger"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/repository/cache"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/repository/file"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/repository/postgres"
	redisRepo "github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/repository/redis"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting LocAbility")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("snapshot_backend", cfg.Snapshot.Backend),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Select snapshot backend
	var snapshots repository.SnapshotRepository
	var db *postgres.DB
	switch cfg.Snapshot.Backend {
	case "file":
		snapshots = file.NewSnapshotRepository(cfg.Snapshot.Path, log)
	case "redis":
		snapshots = cache.NewSnapshotRepository(redisClient, cfg.Snapshot.Name)
	case "postgres":
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		snapshots = postgres.NewSnapshotRepository(db, cfg.Snapshot.Name)
	default:
		log.Fatal("Unknown snapshot backend", zap.String("backend", cfg.Snapshot.Backend))
	}

	// 5. Restore the spot collection
	spotStore := store.New(snapshots, log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := spotStore.Restore(ctx); err != nil {
		cancel()
		log.Fatal("Failed to restore spot collection", zap.Error(err))
	}
	cancel()
	log.Info("Spot collection restored", zap.Int("spots", spotStore.Len()))

	// 6. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	geodataRepo := overpass.NewClient(&cfg.Overpass, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	spotUC := usecase.NewSpotUseCase(spotStore, streamRepo, log)
	proximityUC := usecase.NewProximityUseCase(spotStore, log)
	scoreUC := usecase.NewScoreUseCase(spotStore, proximityUC, cacheRepo, log, cfg.Cache.ScoreCacheTTL)
	importUC := usecase.NewImportUseCase(spotStore, geodataRepo, classify.New(), cfg.Import.DedupRadiusM, log)
	statsUC := usecase.NewStatsUseCase(spotStore, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	spotHandler := handler.NewSpotHandler(spotUC, log)
	nearbyHandler := handler.NewNearbyHandler(proximityUC, log)
	scoreHandler := handler.NewScoreHandler(scoreUC, log)
	importHandler := handler.NewImportHandler(importUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		spotHandler,
		nearbyHandler,
		scoreHandler,
		importHandler,
		statsHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
