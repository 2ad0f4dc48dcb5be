package app

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/ClassBooker/internal/auth"
	"github.com/stpnv0/ClassBooker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenProvider_Static(t *testing.T) {
	p, err := tokenProvider(config.StudioAPIConfig{AuthMode: config.AuthModeStatic, APIKey: "key"})
	require.NoError(t, err)

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", tok)
}

func TestTokenProvider_JWT(t *testing.T) {
	p, err := tokenProvider(config.StudioAPIConfig{
		AuthMode:  config.AuthModeJWT,
		JWTSecret: "secret",
		JWTIssuer: "class-booker",
		JWTTTL:    time.Minute,
	})
	require.NoError(t, err)
	assert.IsType(t, &auth.SignedTokenProvider{}, p)
}

func TestTokenProvider_JWTWithoutSecret(t *testing.T) {
	_, err := tokenProvider(config.StudioAPIConfig{AuthMode: config.AuthModeJWT, JWTTTL: time.Minute})
	assert.Error(t, err)
}

func TestTokenProvider_UnknownMode(t *testing.T) {
	_, err := tokenProvider(config.StudioAPIConfig{AuthMode: "oauth"})
	assert.Error(t, err)
}
