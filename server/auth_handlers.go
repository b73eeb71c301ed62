package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stubio/stubio-web/i18n"
	"github.com/stubio/stubio-web/provider"
	"github.com/stubio/stubio-web/session"
)

// isClientRequest reports whether the caller asked for JSON responses.
func isClientRequest(r *http.Request) bool {
	return r.Header.Get(clientRequestHeader) == clientRequestValue
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// redirectWithParams issues the 303 form-post redirect with the
// outcome encoded as query parameters.
func redirectWithParams(w http.ResponseWriter, r *http.Request, pathname string, params url.Values) {
	target := pathname
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// respondLoginError answers a failed login. Programmatic callers get a
// 400 JSON body; browsers get a 303 back to the login page with the
// code and the submitted email preserved in the query string.
func respondLoginError(w http.ResponseWriter, r *http.Request, clientRequest bool, code loginErrorCode, locale i18n.Locale, email string) {
	if clientRequest {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok":     false,
			"code":   string(code),
			"locale": string(locale),
		})
		return
	}

	redirectWithParams(w, r, fmt.Sprintf("/%s/login", locale), url.Values{
		"error": {string(code)},
		"email": {email},
	})
}

// LoginSubmissionHandler processes the login form (POST /auth/login).
// The error enumeration is closed: missing_credentials,
// invalid_credentials, server_error. A missing account and a wrong
// password are deliberately indistinguishable.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.ToLower(strings.TrimSpace(r.PostFormValue("email")))
		password := r.PostFormValue("password")
		locale := i18n.Normalize(r.PostFormValue("locale"))
		clientRequest := isClientRequest(r)

		if s.provider == nil {
			respondLoginError(w, r, clientRequest, errServerError, locale, email)
			return
		}

		if email == "" || password == "" {
			respondLoginError(w, r, clientRequest, errMissingCredentials, locale, email)
			return
		}

		sess, err := s.provider.SignIn(r.Context(), email, password)
		if err != nil {
			if errors.Is(err, provider.ErrInvalidCredentials) {
				respondLoginError(w, r, clientRequest, errInvalidCredentials, locale, email)
				return
			}
			log.Err(err).Msg("Login sign-in failed")
			respondLoginError(w, r, clientRequest, errServerError, locale, email)
			return
		}

		session.Write(w, r, sess)

		workspacePath := fmt.Sprintf("/%s/workspace", locale)
		if clientRequest {
			writeJSON(w, http.StatusOK, map[string]any{
				"ok":         true,
				"redirectTo": workspacePath + "?tab=overview",
			})
			return
		}

		redirectWithParams(w, r, workspacePath, url.Values{"tab": {"overview"}})
	}
}

// LogoutHandler invalidates the remote session best-effort and always
// redirects to the localized login page (POST /auth/logout).
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := i18n.Normalize(r.PostFormValue("locale"))

		if token, ok := session.Token(r); ok && s.provider != nil {
			if err := s.provider.SignOut(r.Context(), token); err != nil {
				log.Warn().Err(err).Msg("Remote sign-out failed, clearing cookies anyway")
			}
		}

		session.Clear(w, r)
		http.Redirect(w, r, fmt.Sprintf("/%s/login", locale), http.StatusSeeOther)
	}
}

// SessionProbeHandler reports whether the request carries a valid
// session (GET /auth/session). Every internal fault collapses to 401;
// this endpoint never returns a 5xx.
func (s *Server) SessionProbeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, max-age=0")

		if s.currentUser(r) == nil {
			writeJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
	}
}

// currentUser resolves the session cookie to a user, or nil for any
// missing, invalid, or unverifiable session.
func (s *Server) currentUser(r *http.Request) *provider.User {
	token, ok := session.Token(r)
	if !ok || s.provider == nil {
		return nil
	}

	user, err := s.provider.GetUser(r.Context(), token)
	if err != nil {
		return nil
	}
	return user
}
