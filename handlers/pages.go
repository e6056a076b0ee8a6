package handlers

import (
	"net/http"

	"github.com/zambiatennis/ztaweb/pkg/flash"
	"github.com/zambiatennis/ztaweb/services"
)

// eventPreviewSize caps the home page's upcoming-events list.
const eventPreviewSize = 6

// PageHandler serves the informational pages.
type PageHandler struct {
	content services.ContentService
	render  *Renderer
	secret  string
}

// NewPageHandler is the constructor.
func NewPageHandler(content services.ContentService, render *Renderer, secret string) *PageHandler {
	return &PageHandler{content: content, render: render, secret: secret}
}

// Home godoc
// GET /
// Latest news (3) and upcoming events (up to 6, soonest first).
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "index.html", pageData{
		Title:  "Home",
		Flash:  flash.Pop(w, r, h.secret),
		News:   h.content.NewsPreview(),
		Events: h.content.UpcomingEvents(eventPreviewSize),
	})
}

// About godoc
// GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "about.html", pageData{Title: "About"})
}

// News godoc
// GET /news
// All posts in source order.
func (h *PageHandler) News(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "news.html", pageData{
		Title: "News",
		News:  h.content.News(),
	})
}

// Events godoc
// GET /events
func (h *PageHandler) Events(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "events.html", pageData{
		Title:  "Events",
		Events: h.content.Events(),
	})
}

// Ranking godoc
// GET /ranking
func (h *PageHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "ranking.html", pageData{
		Title:    "Rankings",
		Rankings: h.content.Rankings(),
	})
}
