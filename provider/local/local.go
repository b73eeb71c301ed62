// Package local is an in-process auth provider for development and
// tests. Credentials are bcrypt-checked and sessions are short-lived
// HS256 tokens, so the rest of the application sees the same contract
// as the hosted backend.
package local

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stubio/stubio-web/provider"
)

const (
	issuer          = "stubio-local"
	defaultTokenTTL = time.Hour
)

type user struct {
	id           string
	email        string
	passwordHash []byte
}

// Provider is a thread-safe in-memory auth backend.
type Provider struct {
	lock     sync.RWMutex
	users    map[string]*user // keyed by lowercased email
	byID     map[string]*user
	revoked  map[string]struct{}
	secret   []byte
	tokenTTL time.Duration
	nowTime  func() time.Time
}

var _ provider.Provider = (*Provider)(nil)

// Option modifies a Provider.
type Option func(*Provider)

// WithNowTime sets the now time function (primarily for testing).
func WithNowTime(nowFunc func() time.Time) Option {
	return func(p *Provider) {
		p.nowTime = nowFunc
	}
}

// WithTokenTTL overrides the access token lifetime.
func WithTokenTTL(ttl time.Duration) Option {
	return func(p *Provider) {
		p.tokenTTL = ttl
	}
}

// New creates a Provider signing tokens with secret.
func New(secret string, options ...Option) (*Provider, error) {
	if secret == "" {
		return nil, provider.ErrNotConfigured
	}

	p := &Provider{
		users:    make(map[string]*user),
		byID:     make(map[string]*user),
		revoked:  make(map[string]struct{}),
		secret:   []byte(secret),
		tokenTTL: defaultTokenTTL,
		nowTime:  time.Now,
	}

	for _, opt := range options {
		opt(p)
	}

	return p, nil
}

// AddUser registers a user. The email is stored lowercased.
func (p *Provider) AddUser(email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("[AddUser] hash password: %w", err)
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	u := &user{
		id:           uuid.New().String(),
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: hash,
	}
	p.users[u.email] = u
	p.byID[u.id] = u
	return u.id, nil
}

// SignIn checks the credentials and mints a session token.
func (p *Provider) SignIn(_ context.Context, email, password string) (*provider.Session, error) {
	p.lock.RLock()
	u, ok := p.users[strings.ToLower(strings.TrimSpace(email))]
	p.lock.RUnlock()

	if !ok {
		return nil, provider.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return nil, provider.ErrInvalidCredentials
	}

	now := p.nowTime()
	expiresAt := now.Add(p.tokenTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   u.id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.New().String(),
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("[SignIn] sign token: %w", err)
	}

	return &provider.Session{
		AccessToken:  accessToken,
		RefreshToken: uuid.New().String(),
		ExpiresAt:    expiresAt,
	}, nil
}

// SignOut revokes the token. Unknown tokens are not an error.
func (p *Provider) SignOut(_ context.Context, accessToken string) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.revoked[accessToken] = struct{}{}
	return nil
}

// GetUser validates the token and resolves its subject.
func (p *Provider) GetUser(_ context.Context, accessToken string) (*provider.User, error) {
	p.lock.RLock()
	_, revoked := p.revoked[accessToken]
	p.lock.RUnlock()
	if revoked {
		return nil, fmt.Errorf("[GetUser] token revoked")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(accessToken, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(issuer), jwt.WithTimeFunc(p.nowTime))
	if err != nil {
		return nil, fmt.Errorf("[GetUser] parse token: %w", err)
	}

	p.lock.RLock()
	u, ok := p.byID[claims.Subject]
	p.lock.RUnlock()
	if !ok {
		return nil, fmt.Errorf("[GetUser] unknown subject")
	}

	return &provider.User{ID: u.id, Email: u.email}, nil
}
