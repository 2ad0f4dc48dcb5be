// Package auth provides credentials for privileged calls to the studio API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenProvider returns a credential valid for at least one request.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed API key.
type StaticToken string

func (t StaticToken) Token(_ context.Context) (string, error) {
	if t == "" {
		return "", errors.New("api key is empty")
	}
	return string(t), nil
}

const defaultRefreshSkew = 30 * time.Second

type SignedTokenConfig struct {
	Secret  string
	Issuer  string
	Subject string
	TTL     time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// SignedTokenProvider mints short-lived HS256 tokens and reuses each one
// until it is about to expire.
type SignedTokenProvider struct {
	secret  []byte
	issuer  string
	subject string
	ttl     time.Duration
	skew    time.Duration
	now     func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewSignedTokenProvider(cfg SignedTokenConfig) (*SignedTokenProvider, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	skew := defaultRefreshSkew
	if skew >= cfg.TTL {
		skew = cfg.TTL / 2
	}

	return &SignedTokenProvider{
		secret:  []byte(cfg.Secret),
		issuer:  cfg.Issuer,
		subject: cfg.Subject,
		ttl:     cfg.TTL,
		skew:    skew,
		now:     now,
	}, nil
}

func (p *SignedTokenProvider) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.token != "" && now.Add(p.skew).Before(p.expiresAt) {
		return p.token, nil
	}

	expiresAt := now.Add(p.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    p.issuer,
		Subject:   p.subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	p.token = signed
	p.expiresAt = expiresAt
	return signed, nil
}
