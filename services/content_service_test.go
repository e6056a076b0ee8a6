package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zambiatennis/ztaweb/models"
)

func TestContentServiceUpcomingEvents(t *testing.T) {
	t.Run("sorts ascending by start date", func(t *testing.T) {
		svc := NewContentService(nil, []models.Event{
			{Title: "c", Start: "2025-12-01"},
			{Title: "a", Start: "2025-08-20"},
			{Title: "b", Start: "2025-09-15"},
		}, nil)

		got := svc.UpcomingEvents(6)
		require.Len(t, got, 3)
		assert.Equal(t, "a", got[0].Title)
		assert.Equal(t, "b", got[1].Title)
		assert.Equal(t, "c", got[2].Title)
	})

	t.Run("never exceeds the limit", func(t *testing.T) {
		events := make([]models.Event, 10)
		for i := range events {
			events[i] = models.Event{Title: "e", Start: "2025-08-20"}
		}
		svc := NewContentService(nil, events, nil)
		assert.Len(t, svc.UpcomingEvents(6), 6)
	})

	t.Run("missing start date keeps source order", func(t *testing.T) {
		svc := NewContentService(nil, []models.Event{
			{Title: "later", Start: "2025-12-01"},
			{Title: "unknown"},
			{Title: "sooner", Start: "2025-08-20"},
		}, nil)

		got := svc.UpcomingEvents(6)
		require.Len(t, got, 3)
		assert.Equal(t, "later", got[0].Title)
		assert.Equal(t, "unknown", got[1].Title)
		assert.Equal(t, "sooner", got[2].Title)
	})

	t.Run("does not mutate the source list", func(t *testing.T) {
		events := []models.Event{
			{Title: "z", Start: "2025-12-01"},
			{Title: "a", Start: "2025-08-20"},
		}
		svc := NewContentService(nil, events, nil)
		_ = svc.UpcomingEvents(6)
		assert.Equal(t, "z", events[0].Title)
	})
}

func TestContentServiceNewsPreview(t *testing.T) {
	svc := NewContentService([]models.NewsPost{
		{Title: "old", Date: "2023-09-20"},
		{Title: "newest", Date: "2025-08-04"},
		{Title: "mid", Date: "2024-12-16"},
		{Title: "older", Date: "2023-10-20"},
	}, nil, nil)

	got := svc.NewsPreview()
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Title)
	assert.Equal(t, "mid", got[1].Title)
	assert.Equal(t, "old", got[2].Title)
}

func TestContentServiceRankings(t *testing.T) {
	rankings := []models.RankingEntry{{Rank: 1, Player: "Chanda Mwila", Points: 1580}}
	svc := NewContentService(nil, nil, rankings)

	got := svc.Rankings()
	require.Len(t, got, 1)
	got[0].Player = "mutated"
	assert.Equal(t, "Chanda Mwila", svc.Rankings()[0].Player)
}
