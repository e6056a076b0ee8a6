// Package middleware wraps handlers with cross-cutting request checks.
package middleware

import (
	"net"
	"net/http"

	"github.com/zambiatennis/ztaweb/pkg/flash"
	"github.com/zambiatennis/ztaweb/pkg/ratelimit"
)

// RateLimitMiddleware guards the public form endpoints against spam.
type RateLimitMiddleware struct {
	limiter *ratelimit.FormRateLimiter
	secret  string
}

// NewRateLimitMiddleware is the constructor.
func NewRateLimitMiddleware(limiter *ratelimit.FormRateLimiter, secret string) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, secret: secret}
}

// Limit wraps a form POST handler. Over-limit clients get a flash and a
// redirect back to the form page, staying in the site's form idiom
// instead of a bare 429 body.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(clientIP(r)) {
			flash.Set(w, m.secret, flash.Message{
				Text:     "Too many submissions. Please try again in a moment.",
				Category: flash.CategoryDanger,
			})
			http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP keys the limiter by the remote host, dropping the port so one
// browser's sequential connections count as one client.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
