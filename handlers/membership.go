package handlers

import (
	"errors"
	"net/http"

	"github.com/zambiatennis/ztaweb/models"
	"github.com/zambiatennis/ztaweb/pkg"
	"github.com/zambiatennis/ztaweb/pkg/flash"
	"github.com/zambiatennis/ztaweb/services"
)

// MembershipHandler serves the registration form.
type MembershipHandler struct {
	membership services.MembershipService
	render     *Renderer
	secret     string
}

// NewMembershipHandler is the constructor.
func NewMembershipHandler(membership services.MembershipService, render *Renderer, secret string) *MembershipHandler {
	return &MembershipHandler{membership: membership, render: render, secret: secret}
}

// Show godoc
// GET /membership
func (h *MembershipHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "membership.html", pageData{
		Title: "Membership",
		Flash: flash.Pop(w, r, h.secret),
	})
}

// Submit godoc
// POST /membership
// Validates and persists the registration, then redirects back to the
// form with a flash message. Validation failures flash the reason; a
// storage failure flashes the underlying error text. Either way the
// visitor lands back on the form and can resubmit.
func (h *MembershipHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flash.Set(w, h.secret, flash.Message{
			Text:     "Could not read the submitted form.",
			Category: flash.CategoryDanger,
		})
		http.Redirect(w, r, "/membership", http.StatusSeeOther)
		return
	}

	req := &models.RegistrationRequest{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Category: r.PostFormValue("category"),
		Address:  r.PostFormValue("address"),
		Age:      r.PostFormValue("age"),
	}

	_, err := h.membership.Register(r.Context(), req)
	switch {
	case err == nil:
		flash.Set(w, h.secret, flash.Message{
			Text:     "Thank you for registering! We will contact you soon.",
			Category: flash.CategorySuccess,
		})
	case errors.Is(err, pkg.ErrValidation):
		flash.Set(w, h.secret, flash.Message{
			Text:     err.Error(),
			Category: flash.CategoryDanger,
		})
	default:
		flash.Set(w, h.secret, flash.Message{
			Text:     "Error saving your registration: " + err.Error(),
			Category: flash.CategoryDanger,
		})
	}

	http.Redirect(w, r, "/membership", http.StatusSeeOther)
}
