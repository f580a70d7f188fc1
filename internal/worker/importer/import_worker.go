package importer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/config"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase/dto"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/worker"
)

// ImportWorker periodically re-imports the configured areas from the
// external geodata source. Reconciliation makes repeat runs idempotent,
// so a tight interval only costs upstream requests.
type ImportWorker struct {
	*worker.BaseWorker
	importUC *usecase.ImportUseCase
	areas    []config.ImportArea
	interval time.Duration
}

func NewImportWorker(
	importUC *usecase.ImportUseCase,
	areas []config.ImportArea,
	interval time.Duration,
	logger *zap.Logger,
) *ImportWorker {
	return &ImportWorker{
		BaseWorker: worker.NewBaseWorker("geodata-import", "", logger),
		importUC:   importUC,
		areas:      areas,
		interval:   interval,
	}
}

// Start runs one import cycle immediately, then one per interval.
func (w *ImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ImportWorker",
		zap.Int("areas", len(w.areas)),
		zap.Duration("interval", w.interval))

	if len(w.areas) == 0 {
		logger.Warn("No import areas configured, worker is idle")
	}

	w.runCycle(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.runCycle(ctx)
		}
	}
}

// runCycle imports every configured area once. A failed area does not
// block the others.
func (w *ImportWorker) runCycle(ctx context.Context) {
	logger := w.Logger()

	for _, area := range w.areas {
		select {
		case <-w.StopChan():
			return
		case <-ctx.Done():
			return
		default:
		}

		resp, err := w.importUC.Run(ctx, dto.ImportRequest{
			Lat:     area.Lat,
			Lon:     area.Lon,
			RadiusM: area.RadiusM,
		})
		if err != nil {
			logger.Error("Area import failed",
				zap.Float64("lat", area.Lat),
				zap.Float64("lon", area.Lon),
				zap.Float64("radius_m", area.RadiusM),
				zap.Error(err))
			continue
		}

		logger.Info("Area import finished",
			zap.Float64("lat", area.Lat),
			zap.Float64("lon", area.Lon),
			zap.Int("fetched", resp.Fetched),
			zap.Int("added", resp.Added),
			zap.Int("suppressed", resp.Suppressed))
	}
}
