package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/certlab/certquiz-backend/internal/config"
	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Typed history errors mapped to API codes by the handler.
var (
	ErrHistoryNotFound = errors.New("exam history record not found")
	ErrNotRecordOwner  = errors.New("record belongs to another user")
)

// statsCacheTTL bounds staleness if a refresh enqueue is ever lost.
const statsCacheTTL = time.Hour

// HistoryService handles reads and deletes of persisted exam results.
type HistoryService struct {
	historyRepo *repository.HistoryRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(historyRepo *repository.HistoryRepository, rdb *redis.Client, log zerolog.Logger) *HistoryService {
	return &HistoryService{
		historyRepo: historyRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "history_service").Logger(),
	}
}

// List returns a user's attempts ordered by recency. Out-of-range paging
// values are clamped rather than rejected.
func (s *HistoryService) List(ctx context.Context, userID, page, perPage int) ([]model.ExamHistory, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.historyRepo.ListByUser(ctx, userID, page, perPage)
}

// Get returns one attempt, enforcing ownership.
func (s *HistoryService) Get(ctx context.Context, id uuid.UUID, userID int) (*model.ExamHistory, error) {
	h, err := s.historyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("get history: %w", err)
	}
	if h.UserID != userID {
		return nil, ErrNotRecordOwner
	}
	return h, nil
}

// Delete removes one attempt after an ownership check. Deleting a
// non-existent id is a typed not-found, and nothing is mutated.
func (s *HistoryService) Delete(ctx context.Context, id uuid.UUID, userID int) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	if err := s.historyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrHistoryNotFound
		}
		return fmt.Errorf("delete history: %w", err)
	}

	// The cached aggregates are stale now.
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, config.CacheKey.UserStatsKey(userID)).Err()
	}
	return nil
}

// Stats returns the user's aggregate statistics, served from the Redis
// cache when fresh and recomputed from Postgres on a miss (self-healing
// the cache for the next request).
func (s *HistoryService) Stats(ctx context.Context, userID int) (*model.UserStats, error) {
	key := config.CacheKey.UserStatsKey(userID)

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var stats model.UserStats
			if json.Unmarshal([]byte(raw), &stats) == nil {
				return &stats, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Msg("Stats cache read failed, falling back to database")
		}
	}

	stats, err := s.historyRepo.AggregateByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}
	stats.ComputedAt = time.Now().UTC()

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			_ = s.rdb.Set(ctx, key, raw, statsCacheTTL).Err()
		}
	}
	return stats, nil
}
