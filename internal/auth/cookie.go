package auth

import (
	"net/http"
	"strings"
	"time"
)

// CookieName is the session cookie the frontend carries the token in.
const CookieName = "authToken"

// SetSessionCookie writes the session cookie. SameSite is Lax so top-level
// navigation back from external redirects still sends the cookie; Secure
// follows the connection. The token lives only here, never in the body.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie overwrites the cookie with an already-expired empty
// value. The token itself stays valid until its exp claim; there is no
// server-side revocation list.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest locates the session token: the cookie wins, a Bearer
// Authorization header is the single secondary path.
func TokenFromRequest(r *http.Request) (string, bool) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, true
	}
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		if tok := strings.TrimPrefix(authz, "Bearer "); tok != "" {
			return tok, true
		}
	}
	return "", false
}
