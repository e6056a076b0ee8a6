package services

import (
	"context"

	"github.com/zambiatennis/ztaweb/models"
	"github.com/zambiatennis/ztaweb/repository"
)

// ContactService handles contact form submissions.
type ContactService interface {
	// Submit validates the form and persists a new contact message.
	Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error)
}

type contactService struct {
	messageRepo repository.ContactMessageRepository
}

// NewContactService is the constructor — returns the interface.
func NewContactService(messageRepo repository.ContactMessageRepository) ContactService {
	return &contactService{messageRepo: messageRepo}
}

func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error) {
	msg, err := req.Validate()
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}
