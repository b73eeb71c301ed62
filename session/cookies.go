// Package session relays the auth backend's tokens as cookies. The
// application holds no session state of its own: cookies in, cookies
// out, nothing minted or parsed locally.
package session

import (
	"net/http"
	"time"

	"github.com/stubio/stubio-web/provider"
)

const (
	accessCookieName  = "sb-access-token"
	refreshCookieName = "sb-refresh-token"

	refreshMaxAge = 7 * 24 * time.Hour
)

// Write sets the session cookies on the response.
func Write(w http.ResponseWriter, r *http.Request, s *provider.Session) {
	secure := isSecure(r)

	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = 3600
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessCookieName,
		Value:    s.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})

	if s.RefreshToken != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     refreshCookieName,
			Value:    s.RefreshToken,
			Path:     "/",
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(refreshMaxAge.Seconds()),
		})
	}
}

// Token extracts the access token from the request cookies.
func Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(accessCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Clear expires both session cookies.
func Clear(w http.ResponseWriter, r *http.Request) {
	secure := isSecure(r)
	for _, name := range []string{accessCookieName, refreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}

func isSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	return r.Header.Get("X-Forwarded-Proto") == "https"
}
