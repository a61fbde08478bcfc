package repository

import (
	"context"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository handles contact-form submission storage.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// Insert stores a contact message.
func (r *ContactRepository) Insert(ctx context.Context, m *model.ContactMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		m.Name, m.Email, m.Subject, m.Message,
	).Scan(&m.ID, &m.CreatedAt)
}

// ListRecent retrieves the most recent contact messages, newest first.
func (r *ContactRepository) ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM contacts
		 ORDER BY created_at DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
