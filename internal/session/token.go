// Package session resolves the anonymous session identity of a request.
// A session is nothing more than an opaque, unguessable token held in the
// client's cookie jar; the server keeps no session records.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jaevor/go-nanoid"
)

type Resolver struct {
	cookieName string
	maxAge     time.Duration
	generate   func() string
}

// NewResolver builds a resolver minting crypto-random tokens. 24 nanoid
// characters give ~143 bits of entropy.
func NewResolver(cookieName string, maxAgeDays int) (*Resolver, error) {
	generate, err := nanoid.Standard(24)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	return &Resolver{
		cookieName: cookieName,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		generate:   generate,
	}, nil
}

// FromRequest returns the session token carried by the request, or "" when
// the cookie is absent. The token is trusted at face value.
func (r *Resolver) FromRequest(req *http.Request) string {
	cookie, err := req.Cookie(r.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ResolveOrCreate returns the request's session token, minting a new one and
// setting it on the response when the request carries none.
func (r *Resolver) ResolveOrCreate(w http.ResponseWriter, req *http.Request) (string, bool) {
	if token := r.FromRequest(req); token != "" {
		return token, false
	}

	token := r.generate()
	http.SetCookie(w, &http.Cookie{
		Name:     r.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(r.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return token, true
}
