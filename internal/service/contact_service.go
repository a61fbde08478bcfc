package service

import (
	"context"
	"fmt"

	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ContactService handles contact-form submissions.
type ContactService struct {
	contactRepo *repository.ContactRepository
	log         zerolog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo *repository.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		log:         log.With().Str("component", "contact_service").Logger(),
	}
}

// Submit stores a contact message.
func (s *ContactService) Submit(ctx context.Context, req model.SubmitContactRequest) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	s.log.Info().Str("email", msg.Email).Msg("Contact message received")
	return msg, nil
}

// ListRecent returns the newest contact messages.
func (s *ContactService) ListRecent(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	return s.contactRepo.ListRecent(ctx, limit)
}
