package repository

import (
	"context"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryRepository handles exam history data access. Rows are immutable:
// they are inserted once and only ever removed by explicit user deletion.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// InsertTx inserts a history row inside an existing transaction.
func (r *HistoryRepository) InsertTx(ctx context.Context, tx pgx.Tx, h *model.ExamHistory) error {
	return tx.QueryRow(ctx,
		`INSERT INTO exam_history
		   (user_id, test_id, certificate_name, certificate_provider, certificate_code,
		    score, total_questions, percentage, time_spent_seconds, result_summary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at`,
		h.UserID, h.TestID, h.CertificateName, h.CertificateProvider, h.CertificateCode,
		h.Score, h.TotalQuestions, h.Percentage, h.TimeSpentSeconds, h.ResultSummary,
	).Scan(&h.ID, &h.CreatedAt)
}

// ListByUser retrieves a user's history ordered by recency, paginated.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID, page, perPage int) ([]model.ExamHistory, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exam_history WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * perPage
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, test_id, certificate_name, certificate_provider, certificate_code,
		        score, total_questions, percentage, time_spent_seconds, result_summary, created_at
		 FROM exam_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`, userID, perPage, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []model.ExamHistory
	for rows.Next() {
		var h model.ExamHistory
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.TestID, &h.CertificateName, &h.CertificateProvider, &h.CertificateCode,
			&h.Score, &h.TotalQuestions, &h.Percentage, &h.TimeSpentSeconds, &h.ResultSummary, &h.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		entries = append(entries, h)
	}
	return entries, total, rows.Err()
}

// GetByID retrieves one history row including its full result summary.
func (r *HistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ExamHistory, error) {
	h := &model.ExamHistory{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, test_id, certificate_name, certificate_provider, certificate_code,
		        score, total_questions, percentage, time_spent_seconds, result_summary, created_at
		 FROM exam_history WHERE id = $1`, id,
	).Scan(
		&h.ID, &h.UserID, &h.TestID, &h.CertificateName, &h.CertificateProvider, &h.CertificateCode,
		&h.Score, &h.TotalQuestions, &h.Percentage, &h.TimeSpentSeconds, &h.ResultSummary, &h.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Delete removes one history row. Returns pgx.ErrNoRows if nothing matched.
func (r *HistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exam_history WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AggregateByUser computes overall and per-provider statistics for a user.
func (r *HistoryRepository) AggregateByUser(ctx context.Context, userID int) (*model.UserStats, error) {
	stats := &model.UserStats{ByProvider: map[string]model.ProviderStats{}}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(percentage), 0),
		        COALESCE(MAX(percentage), 0),
		        COALESCE(SUM(total_questions), 0),
		        COALESCE(SUM(score), 0)
		 FROM exam_history WHERE user_id = $1`, userID,
	).Scan(&stats.TotalAttempts, &stats.AvgPercentage, &stats.BestPercentage,
		&stats.TotalQuestions, &stats.TotalCorrect)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT certificate_provider, COUNT(*), AVG(percentage)
		 FROM exam_history
		 WHERE user_id = $1
		 GROUP BY certificate_provider`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var provider string
		var ps model.ProviderStats
		if err := rows.Scan(&provider, &ps.Attempts, &ps.AvgPercentage); err != nil {
			return nil, err
		}
		if provider == "" {
			provider = "Unknown"
		}
		stats.ByProvider[provider] = ps
	}
	return stats, rows.Err()
}
