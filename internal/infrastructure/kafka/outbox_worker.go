package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/cfg"
	"github.com/DRSN-tech/fitplan-backend/internal/repository/pgdb"
	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/jitter"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/robfig/cron/v3"
)

// PublishMetrics считает результаты отправки событий.
type PublishMetrics interface {
	IncPublished(ok bool)
}

// OutboxWorker переносит события из outbox в Kafka. Запускается по NOTIFY,
// при старте и по расписанию, которое также возвращает в очередь зависшие события.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	metrics   PublishMetrics
	cfg       *cfg.OutboxCfg
	scheduler *cron.Cron
	stop      chan struct{}
	drainMu   sync.Mutex
	wg        sync.WaitGroup
	dbConnStr string
	reconnect jitter.Backoff
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	metrics PublishMetrics,
	cfg *cfg.OutboxCfg,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		metrics:   metrics,
		cfg:       cfg,
		scheduler: cron.New(),
		stop:      make(chan struct{}),
		dbConnStr: dbConnStr,
		reconnect: jitter.NewBackoff(time.Second, 30*time.Second),
	}
}

func (w *OutboxWorker) Start(ctx context.Context) error {
	if _, err := w.scheduler.AddFunc(w.cfg.SweepSchedule, func() { w.sweep(ctx) }); err != nil {
		return e.Wrap("OutboxWorker.Start", err)
	}
	w.scheduler.Start()

	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.logger.Infof("Draining pending outbox events on startup...")
		w.drain(ctx)
	}()

	go func() {
		defer w.wg.Done()
		w.listenOutboxNotifications(ctx)
	}()

	return nil
}

func (w *OutboxWorker) Stop() {
	<-w.scheduler.Stop().Done()
	close(w.stop)
	w.wg.Wait()
}

// sweep возвращает зависшие события в очередь и дочищает outbox.
func (w *OutboxWorker) sweep(ctx context.Context) {
	reset, err := w.repo.ResetStale(ctx, w.cfg.StaleAfter)
	if err != nil {
		w.logger.Warnf("outbox sweep failed: %v", err)
		return
	}
	if reset > 0 {
		w.logger.Infof("outbox sweep: %d stale events returned to queue", reset)
	}

	w.drain(ctx)
}

// drain обрабатывает пачки, пока очередь не опустеет.
func (w *OutboxWorker) drain(ctx context.Context) {
	w.drainMu.Lock()
	defer w.drainMu.Unlock()

	for {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	var conn *pgx.Conn

	connect := func() error {
		var err error
		conn, err = pgx.Connect(ctx, w.dbConnStr)
		if err != nil {
			conn = nil
			return e.Wrap("failed to connect for LISTEN", err)
		}

		if _, err = conn.Exec(ctx, "LISTEN "+pgdb.OutboxChannel); err != nil {
			conn.Close(ctx)
			conn = nil
			return e.Wrap("failed to LISTEN", err)
		}

		w.logger.Infof("Subscribed to '%s' channel", pgdb.OutboxChannel)
		return nil
	}

	if err := connect(); err != nil {
		w.logger.Warnf("Initial connect failed, relying on scheduled sweep: %v", err)
		return
	}
	defer func() {
		if conn != nil {
			conn.Close(context.Background())
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		waitCtx, cancelWait := context.WithTimeout(ctx, 30*time.Second)
		notif, err := conn.WaitForNotification(waitCtx)
		cancelWait()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Warnf("Connection lost: %v. Reconnecting...", err)
			conn.Close(ctx)

			for attempt := 0; ; attempt++ {
				if err := w.reconnect.Wait(ctx, attempt); err != nil {
					return
				}
				err := connect()
				if err == nil {
					break
				}
				w.logger.Warnf("Reconnect attempt %d failed: %v", attempt+1, err)
			}
			continue
		}

		if notif != nil && notif.Channel == pgdb.OutboxChannel {
			w.logger.Debugf("Received outbox notification, draining outbox events")
			w.drain(ctx)
		}
	}
}

// processBatch возвращает true, если пачка была непустой.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, w.cfg.BatchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			// Событие остается в processing и вернется в очередь при ближайшей чистке.
			w.metrics.IncPublished(false)
			w.logger.Warnf("publish event %s failed: %v", event.EventID, err)
			continue
		}
		w.metrics.IncPublished(true)

		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	return true, nil
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	if err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.PlanID, event.Payload)); err != nil {
		if isRetryableError(err) {
			return e.Wrap("Temporary Kafka failure, will retry", err)
		}
		return e.Wrap("Permanent Kafka failure", err)
	}
	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
