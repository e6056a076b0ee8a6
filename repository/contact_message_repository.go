package repository

import (
	"context"

	"github.com/zambiatennis/ztaweb/models"
)

// ContactMessageRepository persists contact form submissions.
type ContactMessageRepository interface {
	// Create inserts a new message row, filling in ID and SentAt.
	Create(ctx context.Context, msg *models.ContactMessage) error
}
