package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/book-swap-service/pkg/auth"
)

func TestParseUserID(t *testing.T) {
	t.Parallel()
	cfg := auth.Config{JWTSecret: "secret", Issuer: "idp"}
	userID := uuid.NewString()

	tests := []struct {
		name    string
		token   func() string
		wantErr bool
	}{
		{
			name: "ok",
			token: func() string {
				tok, err := auth.NewToken(cfg, userID, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "err. expired",
			token: func() string {
				tok, err := auth.NewToken(cfg, userID, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))})
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
		{
			name: "err. wrong secret",
			token: func() string {
				tok, err := auth.NewToken(auth.Config{JWTSecret: "other", Issuer: "idp"}, userID, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
		{
			name: "err. subject not uuid",
			token: func() string {
				tok, err := auth.NewToken(cfg, "bob", jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
				require.NoError(t, err)
				return tok
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := auth.ParseUserID(cfg, tt.token())
			if tt.wantErr {
				require.ErrorIs(t, err, auth.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			require.Equal(t, userID, got)
		})
	}
}

func TestUserIDContext(t *testing.T) {
	_, err := auth.GetUserID(context.Background())
	require.ErrorIs(t, err, auth.ErrNoUser)

	ctx := auth.SetUserID(context.Background(), "u1")
	got, err := auth.GetUserID(ctx)
	require.NoError(t, err)
	require.Equal(t, "u1", got)
}

func TestBearerToken(t *testing.T) {
	tok, ok := auth.BearerToken("Bearer abc")
	require.True(t, ok)
	require.Equal(t, "abc", tok)

	_, ok = auth.BearerToken("Basic abc")
	require.False(t, ok)
	_, ok = auth.BearerToken("Bearer ")
	require.False(t, ok)
}
