// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ZzzGreay/LanyuERP-BE/config"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
)

// refreshTokenBytes is the entropy of the random part of a refresh token.
const refreshTokenBytes = 40

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string        // Secret key for signing access tokens.
	accessTTL  time.Duration // Time-to-live for access tokens.
	refreshTTL time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &jwtService{
		secret:     cfg.JWT.Secret,
		accessTTL:  time.Duration(cfg.JWT.ExpirationMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.Auth.RefreshTokenDaysTTL) * 24 * time.Hour,
	}, nil
}

// GenerateAccessToken creates a new signed access token for a given user and role.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string and extracts the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing subject claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "subject is not a valid user id")
	}

	role, _ := mapClaims["role"].(string)

	return &service.Claims{
		UserID: userID,
		Role:   role,
	}, nil
}

// GenerateRefreshToken creates an opaque refresh token of the form
// "{userID}.{hex entropy}" along with the hash to store server-side.
func (s *jwtService) GenerateRefreshToken(userID uuid.UUID) (string, string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "read random bytes")
	}

	raw := fmt.Sprintf("%s.%s", userID.String(), hex.EncodeToString(buf))
	return raw, s.HashRefreshToken(raw), nil
}

// HashRefreshToken returns the storage hash of a raw refresh token.
// Only the hash touches the database, never the raw token.
func (s *jwtService) HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}
