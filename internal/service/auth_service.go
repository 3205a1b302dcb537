package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interviewhub/internal/config"
	"interviewhub/internal/dto"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess = "access"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
)

// AuthService validates bearer credentials. Token issuance lives in an
// external service; this process only checks HS256 access tokens
// signed with the shared secret. CreateJWT exists for tooling and
// tests.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, userID string, ttl time.Duration, tokenType string) (string, error)
}

type authServiceImpl struct {
	appConfig *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(appConfig *config.Config) (AuthService, error) {
	if appConfig.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	return &authServiceImpl{appConfig: appConfig}, nil
}

// ValidateJWT parses and verifies a token string and returns its claims.
func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.appConfig.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidJWTToken
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrInvalidJWTToken)
	}
	return claims, nil
}

// CreateJWT signs a token for userID with the given TTL and type.
func (s *authServiceImpl) CreateJWT(ctx context.Context, userID string, ttl time.Duration, tokenType string) (string, error) {
	now := time.Now()
	claims := &dto.AuthClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.appConfig.JWT.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
