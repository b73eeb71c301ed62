package local_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stubio/stubio-web/provider"
	"github.com/stubio/stubio-web/provider/local"
)

const (
	testSecret   = "test-secret"
	testEmail    = "client@example.com"
	testPassword = "password123"
)

func newProvider(t *testing.T, options ...local.Option) (*local.Provider, string) {
	t.Helper()

	p, err := local.New(testSecret, options...)
	require.NoError(t, err)

	id, err := p.AddUser(testEmail, testPassword)
	require.NoError(t, err)
	return p, id
}

func TestNew(t *testing.T) {
	t.Run("empty secret is not configured", func(t *testing.T) {
		_, err := local.New("")
		require.ErrorIs(t, err, provider.ErrNotConfigured)
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials round trip", func(t *testing.T) {
		p, id := newProvider(t)

		sess, err := p.SignIn(ctx, testEmail, testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, sess.AccessToken)
		require.NotEmpty(t, sess.RefreshToken)
		require.True(t, sess.ExpiresAt.After(time.Now()))

		user, err := p.GetUser(ctx, sess.AccessToken)
		require.NoError(t, err)
		require.Equal(t, id, user.ID)
		require.Equal(t, testEmail, user.Email)
	})

	t.Run("email matching ignores case and whitespace", func(t *testing.T) {
		p, _ := newProvider(t)

		_, err := p.SignIn(ctx, "  Client@Example.COM ", testPassword)
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		p, _ := newProvider(t)

		_, err := p.SignIn(ctx, testEmail, "wrong")
		require.ErrorIs(t, err, provider.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		p, _ := newProvider(t)

		_, err := p.SignIn(ctx, "nobody@example.com", testPassword)
		require.ErrorIs(t, err, provider.ErrInvalidCredentials)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		p, _ := newProvider(t)

		_, err := p.GetUser(ctx, "not-a-token")
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		now := time.Now()
		clock := now
		p, _ := newProvider(t,
			local.WithTokenTTL(time.Minute),
			local.WithNowTime(func() time.Time { return clock }),
		)

		sess, err := p.SignIn(ctx, testEmail, testPassword)
		require.NoError(t, err)

		clock = now.Add(2 * time.Minute)
		_, err = p.GetUser(ctx, sess.AccessToken)
		require.Error(t, err)
	})

	t.Run("revoked token", func(t *testing.T) {
		p, _ := newProvider(t)

		sess, err := p.SignIn(ctx, testEmail, testPassword)
		require.NoError(t, err)

		require.NoError(t, p.SignOut(ctx, sess.AccessToken))

		_, err = p.GetUser(ctx, sess.AccessToken)
		require.Error(t, err)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		p, _ := newProvider(t)

		other, err := local.New("other-secret")
		require.NoError(t, err)
		_, err = other.AddUser(testEmail, testPassword)
		require.NoError(t, err)

		sess, err := other.SignIn(ctx, testEmail, testPassword)
		require.NoError(t, err)

		_, err = p.GetUser(ctx, sess.AccessToken)
		require.Error(t, err)
	})
}

func TestSignOut(t *testing.T) {
	t.Run("unknown token is not an error", func(t *testing.T) {
		p, _ := newProvider(t)
		require.NoError(t, p.SignOut(context.Background(), "never-issued"))
	})
}
