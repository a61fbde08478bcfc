package worker

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/certlab/certquiz-backend/internal/config"
	"github.com/certlab/certquiz-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	StatsBatchSize    = 50
	StatsBatchTimeout = 2 * time.Second
	StatsPollTimeout  = 1 * time.Second
	StatsCacheTTL     = time.Hour
)

// StatsWorker drains the refresh queue and rebuilds cached per-user exam
// aggregates. Result submission only enqueues a user ID, so the request
// path never pays for the aggregation query.
type StatsWorker struct {
	historyRepo *repository.HistoryRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

func NewStatsWorker(historyRepo *repository.HistoryRepository, rdb *redis.Client, log zerolog.Logger) *StatsWorker {
	return &StatsWorker{
		historyRepo: historyRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "stats_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

func (w *StatsWorker) Start(ctx context.Context) {
	w.log.Info().Msg("StatsWorker started")

	batch := make([]int, 0, StatsBatchSize)
	lastFlush := time.Now()

	for {
		// Should flush?
		if len(batch) > 0 &&
			(len(batch) >= StatsBatchSize || time.Since(lastFlush) >= StatsBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, StatsPollTimeout, config.WorkerKey.RefreshStatsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			userID, err := strconv.Atoi(item[1])
			if err != nil {
				w.log.Error().Err(err).Str("payload", item[1]).Msg("Invalid user ID payload")
				continue
			}

			batch = append(batch, userID)
		}
	}
}

// ----------------------------------------------------------------
// Batch refresh
// ----------------------------------------------------------------

func (w *StatsWorker) flushSafe(ctx context.Context, batch []int) {
	if len(batch) == 0 {
		return
	}

	// A user submitting several results in one batch window only needs
	// one recompute.
	seen := make(map[int]struct{}, len(batch))
	for _, userID := range batch {
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		if err := w.refreshOne(ctx, userID); err != nil {
			w.log.Error().Err(err).Int("user_id", userID).Msg("stats refresh failed — requeueing")
			w.rdb.RPush(ctx, config.WorkerKey.RefreshStatsQueue, strconv.Itoa(userID))
		}
	}
}

func (w *StatsWorker) refreshOne(ctx context.Context, userID int) error {
	stats, err := w.historyRepo.AggregateByUser(ctx, userID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return w.rdb.Set(ctx, config.CacheKey.UserStatsKey(userID), raw, StatsCacheTTL).Err()
}
