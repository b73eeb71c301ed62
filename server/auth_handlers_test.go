package server_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stubio/stubio-web/internal/config"
	"github.com/stubio/stubio-web/provider"
	"github.com/stubio/stubio-web/provider/providerfake"
	"github.com/stubio/stubio-web/server"
	"github.com/stubio/stubio-web/workspace/storefake"
)

type testFixture struct {
	provider *providerfake.FakeProvider
	store    *storefake.FakeStore
	server   *server.Server
}

func setupFixture(t *testing.T) *testFixture {
	t.Helper()

	fp := providerfake.New()
	fs := storefake.New()
	return &testFixture{
		provider: fp,
		store:    fs,
		server:   server.New(config.New(), fp, fs),
	}
}

// setupUnconfiguredFixture builds a server with no auth provider, the
// state of a deploy whose backend env vars are unset.
func setupUnconfiguredFixture(t *testing.T) *testFixture {
	t.Helper()

	fs := storefake.New()
	return &testFixture{
		store:  fs,
		server: server.New(config.New(), nil, fs),
	}
}

func postForm(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func withSession(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "fake-access-token"})
	return r
}

func locationOf(t *testing.T, w *httptest.ResponseRecorder) *url.URL {
	t.Helper()

	loc := w.Result().Header.Get("Location")
	require.NotEmpty(t, loc)
	parsed, err := url.Parse(loc)
	require.NoError(t, err)
	return parsed
}

func TestLoginSubmission(t *testing.T) {
	t.Run("success redirects to the workspace", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/login", url.Values{
			"email":    {"client@example.com"},
			"password": {"password123"},
			"locale":   {"en"},
		}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		loc := locationOf(t, w)
		require.Equal(t, "/en/workspace", loc.Path)
		require.Equal(t, "overview", loc.Query().Get("tab"))

		cookies := w.Result().Cookies()
		var names []string
		for _, c := range cookies {
			names = append(names, c.Name)
		}
		require.Contains(t, names, "sb-access-token")
		require.Contains(t, names, "sb-refresh-token")
	})

	t.Run("email is trimmed and lowercased, password untouched", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/login", url.Values{
			"email":    {"  USER@X.com "},
			"password": {"  Secret  "},
			"locale":   {"en"},
		}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "user@x.com", f.provider.LastEmail)
		require.Equal(t, "  Secret  ", f.provider.LastPassword)
	})

	t.Run("missing credentials never reach the provider", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/login", url.Values{
			"email":  {""},
			"locale": {"da"},
		}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		loc := locationOf(t, w)
		require.Equal(t, "/da/login", loc.Path)
		require.Equal(t, "missing_credentials", loc.Query().Get("error"))
		require.Equal(t, "", loc.Query().Get("email"))
		require.Zero(t, f.provider.SignInCalls)
	})

	t.Run("whitespace-only email is missing credentials", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/login", url.Values{
			"email":    {"   "},
			"password": {"password123"},
			"locale":   {"en"},
		}))

		loc := locationOf(t, w)
		require.Equal(t, "missing_credentials", loc.Query().Get("error"))
		require.Zero(t, f.provider.SignInCalls)
	})

	t.Run("invalid credentials preserve the email", func(t *testing.T) {
		f := setupFixture(t)
		f.provider.SignInErr = provider.ErrInvalidCredentials

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/login", url.Values{
			"email":    {"client@example.com"},
			"password": {"wrong"},
			"locale":   {"en"},
		}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		loc := locationOf(t, w)
		require.Equal(t, "/en/login", loc.Path)
		require.Equal(t, "invalid_credentials", loc.Query().Get("error"))
		require.Equal(t, "client@example.com", loc.Query().Get("email"))
	})

	t.Run("provider fault maps to server_error", func(t *testing.T) {
		f := setupFixture(t)
		f.provider.SignInErr = errors.New("backend down")

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/login", url.Values{
			"email":    {"client@example.com"},
			"password": {"password123"},
			"locale":   {"en"},
		}))

		loc := locationOf(t, w)
		require.Equal(t, "server_error", loc.Query().Get("error"))
	})

	t.Run("unconfigured provider is server_error before validation", func(t *testing.T) {
		f := setupUnconfiguredFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/login", url.Values{
			"email":  {""},
			"locale": {"en"},
		}))

		loc := locationOf(t, w)
		require.Equal(t, "server_error", loc.Query().Get("error"))
	})

	t.Run("unknown locale falls back to the default", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/login", url.Values{
			"email":    {"client@example.com"},
			"password": {"password123"},
			"locale":   {"xx"},
		}))

		loc := locationOf(t, w)
		require.Equal(t, "/en/workspace", loc.Path)
	})

	t.Run("programmatic caller gets JSON success", func(t *testing.T) {
		f := setupFixture(t)

		r := postForm("/auth/login", url.Values{
			"email":    {"client@example.com"},
			"password": {"password123"},
			"locale":   {"en"},
		})
		r.Header.Set("X-Stubio-Client", "1")

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			OK         bool   `json:"ok"`
			RedirectTo string `json:"redirectTo"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.True(t, body.OK)
		require.Equal(t, "/en/workspace?tab=overview", body.RedirectTo)
	})

	t.Run("programmatic caller gets JSON failure", func(t *testing.T) {
		f := setupFixture(t)
		f.provider.SignInErr = provider.ErrInvalidCredentials

		r := postForm("/auth/login", url.Values{
			"email":    {"client@example.com"},
			"password": {"wrong"},
			"locale":   {"da"},
		})
		r.Header.Set("X-Stubio-Client", "1")

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			OK     bool   `json:"ok"`
			Code   string `json:"code"`
			Locale string `json:"locale"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.False(t, body.OK)
		require.Equal(t, "invalid_credentials", body.Code)
		require.Equal(t, "da", body.Locale)
	})
}

func TestLogout(t *testing.T) {
	t.Run("revokes and clears", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, withSession(postForm("/auth/logout", url.Values{"locale": {"da"}})))

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/da/login", locationOf(t, w).Path)
		require.Equal(t, 1, f.provider.SignOutCalls)
		require.Equal(t, "fake-access-token", f.provider.LastToken)

		for _, c := range w.Result().Cookies() {
			require.Equal(t, -1, c.MaxAge)
		}
	})

	t.Run("remote failure still clears and redirects", func(t *testing.T) {
		f := setupFixture(t)
		f.provider.SignOutErr = errors.New("backend down")

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, withSession(postForm("/auth/logout", url.Values{"locale": {"en"}})))

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/en/login", locationOf(t, w).Path)
	})

	t.Run("no session skips the provider", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, postForm("/auth/logout", url.Values{"locale": {"en"}}))

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Zero(t, f.provider.SignOutCalls)
	})
}

func TestSessionProbe(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/auth/session", nil)))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "no-store, max-age=0", w.Result().Header.Get("Cache-Control"))
		require.JSONEq(t, `{"authenticated":true}`, w.Body.String())
	})

	t.Run("no cookie", func(t *testing.T) {
		f := setupFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/session", nil))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "no-store, max-age=0", w.Result().Header.Get("Cache-Control"))
		require.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})

	t.Run("provider fault collapses to 401, never 5xx", func(t *testing.T) {
		f := setupFixture(t)
		f.provider.GetUserErr = errors.New("backend down")

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/auth/session", nil)))

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})

	t.Run("unconfigured provider is 401", func(t *testing.T) {
		f := setupUnconfiguredFixture(t)

		w := httptest.NewRecorder()
		f.server.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/auth/session", nil)))

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
