package auth

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type ctxKey int

const (
	userIDKey ctxKey = iota + 1
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

var (
	ErrNoUser       = errors.New("user is not authenticated")
	ErrInvalidToken = errors.New("invalid token")
)

type Config struct {
	JWTSecret string `envconfig:"AUTH_JWT_SECRET" json:"-"`
	Issuer    string `envconfig:"AUTH_ISSUER"`
}

// Claims are issued by the external identity provider; Subject carries the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func GetUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", ErrNoUser
	}
	return userID, nil
}

// BearerToken extracts the token part of an Authorization header value.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearer) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearer))
	return token, token != ""
}

// ParseUserID verifies an HS256 token and returns its subject.
func ParseUserID(cfg Config, tokenStr string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, opts...)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", errors.Wrap(ErrInvalidToken, "subject is not a uuid")
	}
	return claims.Subject, nil
}

// NewToken signs a token for userID; used by tests and local tooling.
func NewToken(cfg Config, userID string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = userID
	if cfg.Issuer != "" {
		claims.Issuer = cfg.Issuer
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: claims})
	return token.SignedString([]byte(cfg.JWTSecret))
}
