package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/certlab/certquiz-backend/internal/config"
	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Result validation errors, surfaced as typed failures to the caller.
var (
	ErrQuestionCountMismatch = errors.New("question list does not match totalQuestions")
	ErrInvalidTiming         = errors.New("endTime precedes startTime")
)

// ResultService scores submitted quiz results and persists them.
type ResultService struct {
	pool        *pgxpool.Pool
	userRepo    *repository.UserRepository
	historyRepo *repository.HistoryRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(
	pool *pgxpool.Pool,
	userRepo *repository.UserRepository,
	historyRepo *repository.HistoryRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *ResultService {
	return &ResultService{
		pool:        pool,
		userRepo:    userRepo,
		historyRepo: historyRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "result_service").Logger(),
	}
}

// BuildSummary validates a submitted result and computes the persisted
// summary. Pure and deterministic: the same result and submission time
// always produce an identical summary. Client-sent score and percentage are
// ignored; correctness is recomputed from each question's answer pair.
func BuildSummary(res model.QuizResult, email string, submittedAt time.Time) (*model.ResultSummary, error) {
	if len(res.Questions) != res.TotalQuestions {
		return nil, fmt.Errorf("%w: got %d questions, expected %d",
			ErrQuestionCountMismatch, len(res.Questions), res.TotalQuestions)
	}
	if res.EndTime.Before(res.StartTime) {
		return nil, ErrInvalidTiming
	}

	questions := make([]model.QuestionResult, len(res.Questions))
	score := 0
	for i, q := range res.Questions {
		q.IsCorrect = q.CorrectAnswer.Matches(q.UserAnswer)
		if q.IsCorrect {
			score++
		}
		questions[i] = q
	}

	total := res.TotalQuestions
	percentage := int(math.Round(float64(score) / float64(total) * 100))

	totalSeconds := res.TimeSpent
	if totalSeconds <= 0 {
		totalSeconds = int(res.EndTime.Sub(res.StartTime).Seconds())
	}

	return &model.ResultSummary{
		Questions: questions,
		Settings:  res.QuizSettings,
		Timing: model.Timing{
			StartTime:    res.StartTime,
			EndTime:      res.EndTime,
			TotalSeconds: totalSeconds,
		},
		Performance: model.Performance{
			Score:            score,
			TotalQuestions:   total,
			Percentage:       percentage,
			CorrectAnswers:   score,
			IncorrectAnswers: total - score,
		},
		SubmittedAt: submittedAt,
		UserEmail:   email,
	}, nil
}

// Submit scores a result and stores it as a new exam history row. The
// identity upsert and the history insert run in one transaction: both
// succeed or both roll back.
func (s *ResultService) Submit(ctx context.Context, user *model.User, res model.QuizResult) (*model.ExamHistory, error) {
	summary, err := BuildSummary(res, user.Email, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("marshal result summary: %w", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	userID, err := s.userRepo.UpsertTx(ctx, tx, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	history := &model.ExamHistory{
		UserID:              userID,
		TestID:              res.TestID,
		CertificateName:     res.CertificateName,
		CertificateProvider: res.CertificateProvider,
		CertificateCode:     res.CertificateCode,
		Score:               summary.Performance.Score,
		TotalQuestions:      summary.Performance.TotalQuestions,
		Percentage:          summary.Performance.Percentage,
		TimeSpentSeconds:    summary.Timing.TotalSeconds,
		ResultSummary:       raw,
	}
	if err := s.historyRepo.InsertTx(ctx, tx, history); err != nil {
		return nil, fmt.Errorf("insert history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	s.queueStatsRefresh(ctx, userID)
	return history, nil
}

// queueStatsRefresh invalidates the cached aggregate stats and asks the
// stats worker to recompute them. Failure here is logged only — the result
// row is already committed.
func (s *ResultService) queueStatsRefresh(ctx context.Context, userID int) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, config.CacheKey.UserStatsKey(userID)).Err(); err != nil {
		s.log.Warn().Err(err).Int("user_id", userID).Msg("Failed to invalidate stats cache")
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.RefreshStatsQueue, strconv.Itoa(userID)).Err(); err != nil {
		s.log.Warn().Err(err).Int("user_id", userID).Msg("Failed to enqueue stats refresh")
	}
}
