package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zambiatennis/ztaweb/models"
)

// sqliteMemberRepo is the SQLite implementation of MemberRepository.
type sqliteMemberRepo struct {
	db *sql.DB
}

// NewSQLiteMemberRepo is the constructor — returns the interface.
func NewSQLiteMemberRepo(db *sql.DB) MemberRepository {
	return &sqliteMemberRepo{db: db}
}

func (r *sqliteMemberRepo) Create(ctx context.Context, member *models.Member) error {
	// Single-statement insert: atomic by construction, no partial row on
	// failure. id comes from AUTOINCREMENT, joined_at from the column
	// default, both read back via RETURNING.
	query := `
		INSERT INTO members (name, email, phone, category, address, age)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, joined_at`

	err := r.db.QueryRowContext(ctx, query,
		member.Name,
		member.Email,
		member.Phone,
		member.Category,
		member.Address,
		member.Age,
	).Scan(&member.ID, &member.JoinedAt)

	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}
