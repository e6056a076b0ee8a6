// Package flash carries a one-shot status message across the
// POST-redirect-GET cycle of the form pages.
//
// The message rides in a short-lived cookie whose payload is a JWT signed
// with the site secret. Signing keeps the cookie tamper-proof without any
// server-side session state: a forged or expired cookie simply fails
// verification and is dropped.
package flash

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName = "zta_flash"

	// ttl bounds how long an unread flash stays valid. The redirect that
	// consumes it lands within milliseconds; anything older is stale.
	ttl = 5 * time.Minute
)

// Categories mirror the bootstrap alert classes the templates use.
const (
	CategorySuccess = "success"
	CategoryDanger  = "danger"
)

// Message is a single flash entry.
type Message struct {
	Text     string
	Category string
}

type messageClaims struct {
	Text     string `json:"msg"`
	Category string `json:"cat"`
	jwt.RegisteredClaims
}

// Set stores msg in the flash cookie, signed with secret.
// A signing failure drops the flash; the page still renders.
func Set(w http.ResponseWriter, secret string, msg Message) {
	claims := messageClaims{
		Text:     msg.Text,
		Category: msg.Category,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads and clears the flash cookie. It returns nil when no cookie is
// present or the token does not verify against secret.
func Pop(w http.ResponseWriter, r *http.Request, secret string) *Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	// Clear regardless of validity — a flash is read at most once.
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	claims := &messageClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	return &Message{Text: claims.Text, Category: claims.Category}
}
