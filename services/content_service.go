package services

import (
	"sort"

	"github.com/zambiatennis/ztaweb/models"
)

// newsPreviewSize is how many posts the home page shows.
const newsPreviewSize = 3

// ContentService serves the read-only content lists. The lists are fixed
// at construction (wire-up injects them), so every method is a pure read.
type ContentService interface {
	// News returns all posts in source order.
	News() []models.NewsPost

	// NewsPreview returns the most recent posts for the home page,
	// newest first.
	NewsPreview() []models.NewsPost

	// Events returns all events in source order.
	Events() []models.Event

	// UpcomingEvents returns up to limit events ascending by start date.
	// If any event lacks a start date the source order is kept instead.
	UpcomingEvents(limit int) []models.Event

	// Rankings returns the national ranking table.
	Rankings() []models.RankingEntry
}

type contentService struct {
	news     []models.NewsPost
	events   []models.Event
	rankings []models.RankingEntry
}

// NewContentService is the constructor — returns the interface.
func NewContentService(news []models.NewsPost, events []models.Event, rankings []models.RankingEntry) ContentService {
	return &contentService{news: news, events: events, rankings: rankings}
}

func (s *contentService) News() []models.NewsPost {
	out := make([]models.NewsPost, len(s.news))
	copy(out, s.news)
	return out
}

func (s *contentService) NewsPreview() []models.NewsPost {
	posts := s.News()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	if len(posts) > newsPreviewSize {
		posts = posts[:newsPreviewSize]
	}
	return posts
}

func (s *contentService) Events() []models.Event {
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *contentService) UpcomingEvents(limit int) []models.Event {
	events := s.Events()

	// ISO date strings sort chronologically as plain strings. An event
	// with no start date can't take part in that ordering, so the whole
	// list falls back to source order rather than sorting garbage first.
	sortable := true
	for _, e := range events {
		if e.Start == "" {
			sortable = false
			break
		}
	}
	if sortable {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Start < events[j].Start
		})
	}

	if limit >= 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}

func (s *contentService) Rankings() []models.RankingEntry {
	out := make([]models.RankingEntry, len(s.rankings))
	copy(out, s.rankings)
	return out
}
