package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/classify"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/config"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/infrastructure/overpass"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/pkg/logger"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/repository/cache"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/repository/file"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/repository/postgres"
	redisRepo "github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/repository/redis"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/store"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/worker"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/worker/importer"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/worker/spotsync"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting LocAbility Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Duration("import_interval", cfg.Worker.ImportInterval),
		zap.Int("import_areas", len(cfg.Worker.Areas)))

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
	switch cfg.Snapshot.Backend {
	case "file":
		snapshots = file.NewSnapshotRepository(cfg.Snapshot.Path, log)
	case "redis":
		snapshots = cache.NewSnapshotRepository(redisClient, cfg.Snapshot.Name)
	case "postgres":
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		snapshots = postgres.NewSnapshotRepository(db, cfg.Snapshot.Name)
	default:
		log.Fatal("Unknown snapshot backend", zap.String("backend", cfg.Snapshot.Backend))
	}

	// 5. Restore the spot collection
	spotStore := store.New(snapshots, log)

	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := spotStore.Restore(restoreCtx); err != nil {
		restoreCancel()
		log.Fatal("Failed to restore spot collection", zap.Error(err))
	}
	restoreCancel()
	log.Info("Spot collection restored", zap.Int("spots", spotStore.Len()))

	// 6. Initialize repositories and use cases
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	geodataRepo := overpass.NewClient(&cfg.Overpass, log)

	importUC := usecase.NewImportUseCase(spotStore, geodataRepo, classify.New(), cfg.Import.DedupRadiusM, log)

	// 7. Initialize workers
	importWorker := importer.NewImportWorker(
		importUC,
		cfg.Worker.Areas,
		cfg.Worker.ImportInterval,
		log,
	)
	invalidationWorker := spotsync.NewInvalidationWorker(
		streamRepo,
		cacheRepo,
		cfg.Worker.ConsumerGroup,
		log,
	)

	// 8. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(importWorker)
	workerManager.Register(invalidationWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
