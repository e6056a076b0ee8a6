package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/zambiatennis/ztaweb/pkg"
)

// Member is a registered association participant — the Go counterpart of
// the "members" table. Rows are append-only: once written they are never
// updated or deleted.
//
// Optional columns are pointers so that an omitted form field stays NULL
// in the database instead of becoming an empty string or zero.
type Member struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone"`
	Category *string   `json:"category"`
	Address  *string   `json:"address"`
	Age      *int      `json:"age"`
	JoinedAt time.Time `json:"joined_at"`
}

// RegistrationRequest carries the raw membership form fields. Age stays a
// string here — parsing it is part of validation, so a non-numeric value
// is a rejected submission rather than a handler crash.
type RegistrationRequest struct {
	Name     string
	Email    string
	Phone    string
	Category string
	Address  string
	Age      string
}

// Validate checks the request and builds the Member to insert. It is a
// pure function of the request: no storage access, safe to test alone.
//
// Rules: name and email must be non-empty after trimming; age, when
// provided, must parse as an integer.
func (r *RegistrationRequest) Validate() (*Member, error) {
	name := strings.TrimSpace(r.Name)
	email := strings.TrimSpace(r.Email)
	if name == "" || email == "" {
		return nil, pkg.Validation("Name and email are required.")
	}

	m := &Member{Name: name, Email: email}

	if v := strings.TrimSpace(r.Phone); v != "" {
		m.Phone = &v
	}
	if v := strings.TrimSpace(r.Category); v != "" {
		m.Category = &v
	}
	if v := strings.TrimSpace(r.Address); v != "" {
		m.Address = &v
	}
	if v := strings.TrimSpace(r.Age); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return nil, pkg.Validation("Age must be a whole number.")
		}
		m.Age = &age
	}

	return m, nil
}
