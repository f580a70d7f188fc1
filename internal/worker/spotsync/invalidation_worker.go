package spotsync

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/domain/repository"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/usecase"
	"github.com/Apps4Athens-Hackathon-2-0/49-LocAbility/internal/worker"
)

// InvalidationWorker follows the spot change stream and drops cached
// area scores after every mutation, so score reads never serve data
// older than the cache TTL plus stream lag.
type InvalidationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	consumerName string
}

func NewInvalidationWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	logger *zap.Logger,
) *InvalidationWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &InvalidationWorker{
		BaseWorker:   worker.NewBaseWorker("score-invalidation", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
	}
}

// Start consumes spot change events until stopped.
func (w *InvalidationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting InvalidationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.SpotChangeStream, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// The consume goroutine follows ctx; wire StopChan into it.
	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-consumeCtx.Done():
		}
	}()

	msgChan, err := w.streamRepo.ConsumeStream(consumeCtx, domain.SpotChangeStream, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for msg := range msgChan {
		w.handleMessage(ctx, msg)
	}

	logger.Info("Worker stopped")
	return nil
}

func (w *InvalidationWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	deleted, err := w.cacheRepo.DeletePrefix(ctx, usecase.ScoreCachePrefix)
	if err != nil {
		logger.Error("Failed to invalidate score cache",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Leave the message pending so another consumer retries it.
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.SpotChangeStream, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	logger.Debug("Score cache invalidated",
		zap.String("message_id", msg.ID),
		zap.Int("deleted", deleted))
}
