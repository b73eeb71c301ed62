package hosted_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stubio/stubio-web/provider"
	"github.com/stubio/stubio-web/provider/hosted"
)

const testAPIKey = "anon-key"

func newClient(t *testing.T, handler http.Handler) *hosted.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := hosted.New(srv.URL, testAPIKey)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("missing url or key is not configured", func(t *testing.T) {
		_, err := hosted.New("", "key")
		require.ErrorIs(t, err, provider.ErrNotConfigured)

		_, err = hosted.New("https://x.example.com", "")
		require.ErrorIs(t, err, provider.ErrNotConfigured)
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/v1/token", r.URL.Path)
			require.Equal(t, "password", r.URL.Query().Get("grant_type"))
			require.Equal(t, testAPIKey, r.Header.Get("apikey"))

			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			require.Equal(t, "client@example.com", creds["email"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "access-abc",
				"refresh_token": "refresh-abc",
				"expires_in":    3600,
			})
		}))

		sess, err := c.SignIn(ctx, "client@example.com", "password123")
		require.NoError(t, err)
		require.Equal(t, "access-abc", sess.AccessToken)
		require.Equal(t, "refresh-abc", sess.RefreshToken)
	})

	t.Run("rejection maps to invalid credentials", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
		}))

		_, err := c.SignIn(ctx, "client@example.com", "wrong")
		require.ErrorIs(t, err, provider.ErrInvalidCredentials)
	})

	t.Run("backend fault is not invalid credentials", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		_, err := c.SignIn(ctx, "client@example.com", "password123")
		require.Error(t, err)
		require.NotErrorIs(t, err, provider.ErrInvalidCredentials)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		c, err := hosted.New(srv.URL, testAPIKey)
		require.NoError(t, err)

		_, err = c.SignIn(ctx, "client@example.com", "password123")
		require.Error(t, err)
		require.NotErrorIs(t, err, provider.ErrInvalidCredentials)
	})

	t.Run("empty access token in response", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": ""})
		}))

		_, err := c.SignIn(ctx, "client@example.com", "password123")
		require.Error(t, err)
	})
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("sends bearer token", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/v1/logout", r.URL.Path)
			require.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		}))

		require.NoError(t, c.SignOut(ctx, "token-abc"))
	})

	t.Run("failure surfaces", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))

		require.Error(t, c.SignOut(ctx, "token-abc"))
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/v1/user", r.URL.Path)
			require.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id":    "user-1",
				"email": "client@example.com",
			})
		}))

		user, err := c.GetUser(ctx, "token-abc")
		require.NoError(t, err)
		require.Equal(t, "user-1", user.ID)
		require.Equal(t, "client@example.com", user.Email)
	})

	t.Run("empty token short-circuits", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		}))

		_, err := c.GetUser(ctx, "")
		require.Error(t, err)
	})

	t.Run("rejected token", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))

		_, err := c.GetUser(ctx, "token-abc")
		require.Error(t, err)
	})

	t.Run("response missing id", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"email": "client@example.com"})
		}))

		_, err := c.GetUser(ctx, "token-abc")
		require.Error(t, err)
	})
}
