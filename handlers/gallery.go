package handlers

import (
	"net/http"

	"github.com/zambiatennis/ztaweb/services"
)

// GalleryHandler serves the three image gallery pages. All three share
// one template; only the category (and with it the directory) differs.
type GalleryHandler struct {
	gallery services.GalleryService
	render  *Renderer
}

// NewGalleryHandler is the constructor.
func NewGalleryHandler(gallery services.GalleryService, render *Renderer) *GalleryHandler {
	return &GalleryHandler{gallery: gallery, render: render}
}

// Veterans godoc
// GET /veterans
func (h *GalleryHandler) Veterans(w http.ResponseWriter, r *http.Request) {
	h.show(w, "Veterans", "veterans")
}

// Juniors godoc
// GET /juniors
func (h *GalleryHandler) Juniors(w http.ResponseWriter, r *http.Request) {
	h.show(w, "Juniors", "juniors")
}

// Seniors godoc
// GET /seniors
func (h *GalleryHandler) Seniors(w http.ResponseWriter, r *http.Request) {
	h.show(w, "Seniors", "seniors")
}

func (h *GalleryHandler) show(w http.ResponseWriter, title, category string) {
	h.render.Render(w, "gallery.html", pageData{
		Title:  title,
		Images: h.gallery.Images(category),
	})
}
