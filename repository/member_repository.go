// Package repository defines the persistence interfaces and their SQLite
// implementations. Both record types are insert-only: the site exposes no
// reads, updates, or deletes over them.
package repository

import (
	"context"

	"github.com/zambiatennis/ztaweb/models"
)

// MemberRepository persists membership registrations.
type MemberRepository interface {
	// Create inserts a new member row. The storage layer assigns ID and
	// JoinedAt and fills them in on the passed struct.
	Create(ctx context.Context, member *models.Member) error
}
