package handlers

import (
	"errors"
	"net/http"

	"github.com/zambiatennis/ztaweb/models"
	"github.com/zambiatennis/ztaweb/pkg"
	"github.com/zambiatennis/ztaweb/pkg/flash"
	"github.com/zambiatennis/ztaweb/services"
)

// ContactHandler serves the contact form.
type ContactHandler struct {
	contact services.ContactService
	render  *Renderer
	secret  string
}

// NewContactHandler is the constructor.
func NewContactHandler(contact services.ContactService, render *Renderer, secret string) *ContactHandler {
	return &ContactHandler{contact: contact, render: render, secret: secret}
}

// Show godoc
// GET /contact
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "contact.html", pageData{
		Title: "Contact",
		Flash: flash.Pop(w, r, h.secret),
	})
}

// Submit godoc
// POST /contact
// Same POST-redirect-GET contract as the membership form.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flash.Set(w, h.secret, flash.Message{
			Text:     "Could not read the submitted form.",
			Category: flash.CategoryDanger,
		})
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	req := &models.ContactRequest{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	_, err := h.contact.Submit(r.Context(), req)
	switch {
	case err == nil:
		flash.Set(w, h.secret, flash.Message{
			Text:     "Thank you for contacting us. We will respond shortly.",
			Category: flash.CategorySuccess,
		})
	case errors.Is(err, pkg.ErrValidation):
		flash.Set(w, h.secret, flash.Message{
			Text:     err.Error(),
			Category: flash.CategoryDanger,
		})
	default:
		flash.Set(w, h.secret, flash.Message{
			Text:     "Error sending your message: " + err.Error(),
			Category: flash.CategoryDanger,
		})
	}

	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
