package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eligify/eligify-backend/internal/config"
	"github.com/eligify/eligify-backend/internal/model"
	"github.com/eligify/eligify-backend/internal/repository"
)

// CheckRecorderWorker consumes record_checks_queue and persists per-exam
// eligibility verdicts to PostgreSQL. Keeping the insert off the request path
// keeps the matching scan pure and I/O-free.
type CheckRecorderWorker struct {
	checkRepo *repository.CheckRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

// NewCheckRecorderWorker creates a new CheckRecorderWorker.
func NewCheckRecorderWorker(checkRepo *repository.CheckRepository, rdb *redis.Client, log zerolog.Logger) *CheckRecorderWorker {
	return &CheckRecorderWorker{
		checkRepo: checkRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "check_recorder_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *CheckRecorderWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *CheckRecorderWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.RecordChecksQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	if err := w.record(ctx, []byte(result[1])); err != nil {
		w.log.Error().Err(err).Msg("Record error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.RecordChecksQueue, result[1])
		time.Sleep(5 * time.Second)
	}
}

func (w *CheckRecorderWorker) record(ctx context.Context, raw []byte) error {
	var payload model.RecordChecksPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payloads are dropped, not retried.
		w.log.Error().Err(err).Msg("Unmarshal error, dropping item")
		return nil
	}

	snapshot, err := json.Marshal(payload.Candidate)
	if err != nil {
		return err
	}

	for _, outcome := range payload.Outcomes {
		if err := w.checkRepo.InsertCheck(ctx, outcome.ExamID, outcome.Eligible, snapshot, payload.CheckedAt); err != nil {
			return err
		}
	}
	return nil
}

// drain processes all remaining items in the queue before shutdown.
func (w *CheckRecorderWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.RecordChecksQueue).Result()
		if err != nil {
			break
		}
		if err := w.record(ctx, []byte(result)); err != nil {
			w.log.Error().Err(err).Msg("Drain record error")
			continue
		}
		drained++
	}
	if drained > 0 {
		w.log.Info().Int("drained", drained).Msg("Queue drained")
	}
}
