package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
}

func (s *stubTokenService) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return "token", nil
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	if s.claims == nil {
		return nil, errors.New("invalid token")
	}

	return s.claims, nil
}

func (s *stubTokenService) GenerateRefreshToken(userID uuid.UUID) (string, string, error) {
	return "raw", "hash", nil
}

func (s *stubTokenService) HashRefreshToken(raw string) string { return "hash" }

func (s *stubTokenService) GetAccessTokenDuration() time.Duration { return 15 * time.Minute }

func (s *stubTokenService) GetRefreshTokenDuration() time.Duration { return 30 * 24 * time.Hour }

func requestWithAuth(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{})
	c, rec := requestWithAuth("")

	require.NoError(t, mw.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{})
	c, rec := requestWithAuth("Basic dXNlcjpwYXNz")

	require.NoError(t, mw.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{claims: nil})
	c, rec := requestWithAuth("Bearer bad-token")

	require.NoError(t, mw.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_StoresActor(t *testing.T) {
	userID := uuid.New()
	mw := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{UserID: userID, Role: "admin"}})
	c, rec := requestWithAuth("Bearer good-token")

	var seen usecase.Actor
	next := func(c echo.Context) error {
		seen = ActorFromContext(c)

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, mw.Authenticate(next)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seen.UserID)
	assert.True(t, seen.IsAdmin())
}

func TestRequireRole_RejectsOtherRole(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{UserID: uuid.New(), Role: "user"}})
	c, rec := requestWithAuth("Bearer good-token")

	guarded := mw.Authenticate(mw.RequireRole("admin")(okHandler))
	require.NoError(t, guarded(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{UserID: uuid.New(), Role: "admin"}})
	c, rec := requestWithAuth("Bearer good-token")

	guarded := mw.Authenticate(mw.RequireRole("admin")(okHandler))
	require.NoError(t, guarded(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_WithoutAuthenticateIsForbidden(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{})
	c, rec := requestWithAuth("")

	require.NoError(t, mw.RequireRole("admin")(okHandler)(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
