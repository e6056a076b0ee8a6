package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zambiatennis/ztaweb/models"
)

// sqliteContactMessageRepo is the SQLite implementation of
// ContactMessageRepository.
type sqliteContactMessageRepo struct {
	db *sql.DB
}

// NewSQLiteContactMessageRepo is the constructor — returns the interface.
func NewSQLiteContactMessageRepo(db *sql.DB) ContactMessageRepository {
	return &sqliteContactMessageRepo{db: db}
}

func (r *sqliteContactMessageRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO messages (name, email, subject, message)
		VALUES (?, ?, ?, ?)
		RETURNING id, sent_at`

	err := r.db.QueryRowContext(ctx, query,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
	).Scan(&msg.ID, &msg.SentAt)

	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}
