// Package providerfake is a scriptable provider.Provider for handler tests.
package providerfake

import (
	"context"
	"sync"
	"time"

	"github.com/stubio/stubio-web/provider"
)

var _ provider.Provider = (*FakeProvider)(nil)

// FakeProvider records calls and returns whatever its fields say.
type FakeProvider struct {
	lock sync.Mutex

	SignInErr  error
	SignOutErr error
	GetUserErr error

	Session *provider.Session
	User    *provider.User

	SignInCalls  int
	SignOutCalls int
	GetUserCalls int

	LastEmail    string
	LastPassword string
	LastToken    string
}

// New returns a fake that accepts any credentials with a static session.
func New() *FakeProvider {
	return &FakeProvider{
		Session: &provider.Session{
			AccessToken:  "fake-access-token",
			RefreshToken: "fake-refresh-token",
			ExpiresAt:    time.Now().Add(time.Hour),
		},
		User: &provider.User{ID: "user-1", Email: "user@x.com"},
	}
}

func (f *FakeProvider) SignIn(_ context.Context, email, password string) (*provider.Session, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.SignInCalls++
	f.LastEmail = email
	f.LastPassword = password
	if f.SignInErr != nil {
		return nil, f.SignInErr
	}
	return f.Session, nil
}

func (f *FakeProvider) SignOut(_ context.Context, accessToken string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.SignOutCalls++
	f.LastToken = accessToken
	return f.SignOutErr
}

func (f *FakeProvider) GetUser(_ context.Context, accessToken string) (*provider.User, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.GetUserCalls++
	f.LastToken = accessToken
	if f.GetUserErr != nil {
		return nil, f.GetUserErr
	}
	return f.User, nil
}
