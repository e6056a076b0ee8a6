package models

import (
	"strings"
	"time"

	"github.com/zambiatennis/ztaweb/pkg"
)

// ContactMessage is a visitor inquiry — the Go counterpart of the
// "messages" table. Append-only, like Member.
type ContactMessage struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject *string   `json:"subject"`
	Message *string   `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// ContactRequest carries the raw contact form fields.
type ContactRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks the request and builds the ContactMessage to insert.
// Subject and message are free text with no length limit.
func (r *ContactRequest) Validate() (*ContactMessage, error) {
	name := strings.TrimSpace(r.Name)
	email := strings.TrimSpace(r.Email)
	if name == "" || email == "" {
		return nil, pkg.Validation("Name and email are required.")
	}

	m := &ContactMessage{Name: name, Email: email}

	if v := strings.TrimSpace(r.Subject); v != "" {
		m.Subject = &v
	}
	if r.Message != "" {
		v := r.Message
		m.Message = &v
	}

	return m, nil
}
