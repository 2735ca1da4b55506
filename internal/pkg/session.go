package pkg

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// GenerateNewSessionID returns a random session id.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// Sessions hands out the cookie that ties a browser to its game.
type Sessions struct {
	CookieName string
	TTL        time.Duration
	Now        func() time.Time
}

func NewSessions(cookieName string, ttl time.Duration) *Sessions {
	return &Sessions{
		CookieName: cookieName,
		TTL:        ttl,
		Now:        time.Now,
	}
}

// Resolve returns the request's session id. When the request has none, a new id
// is generated and the cookie that must be sent back is returned as well.
func (that *Sessions) Resolve(req *http.Request) (string, *http.Cookie) {
	cookie, err := req.Cookie(that.CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	fresh := &http.Cookie{
		Name:     that.CookieName,
		Value:    GenerateNewSessionID(),
		Expires:  that.Now().Add(that.TTL),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return fresh.Value, fresh
}

// Ensure resolves the session and sets the cookie on writer when it is new.
func (that *Sessions) Ensure(writer http.ResponseWriter, req *http.Request) string {
	id, fresh := that.Resolve(req)
	if fresh != nil {
		http.SetCookie(writer, fresh)
	}

	return id
}

// Clear expires the session cookie in the browser.
func (that *Sessions) Clear(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     that.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
