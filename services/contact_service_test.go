package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zambiatennis/ztaweb/models"
	"github.com/zambiatennis/ztaweb/pkg"
)

type fakeMessageRepo struct {
	created []*models.ContactMessage
}

func (f *fakeMessageRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	m.ID = int64(len(f.created) + 1)
	m.SentAt = time.Now().UTC()
	f.created = append(f.created, m)
	return nil
}

func TestContactServiceSubmit(t *testing.T) {
	t.Run("valid request is persisted", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := NewContactService(repo)

		m, err := svc.Submit(context.Background(), &models.ContactRequest{
			Name: "Jane", Email: "jane@example.com", Subject: "Hi",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), m.ID)
		assert.Len(t, repo.created, 1)
	})

	t.Run("missing email is rejected before storage", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := NewContactService(repo)

		_, err := svc.Submit(context.Background(), &models.ContactRequest{Name: "Jane"})
		require.Error(t, err)
		assert.ErrorIs(t, err, pkg.ErrValidation)
		assert.Empty(t, repo.created)
	})
}
