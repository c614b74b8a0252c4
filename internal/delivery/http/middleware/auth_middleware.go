package middleware

import (
	"net/http"
	"strings"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the authenticated actor lives on the echo context.
const actorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header is missing", "")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token format, must be Bearer token", "")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", "")
		}

		c.Set(actorContextKey, usecase.Actor{
			UserID: claims.UserID,
			Role:   entity.Role(claims.Role),
		})

		return next(c)
	}
}

// RequireRole checks that the authenticated actor holds the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(actorContextKey).(usecase.Actor)
			if !ok {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: role information missing", "")
			}

			if actor.Role.String() != requiredRole {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role", "")
			}

			return next(c)
		}
	}
}

// ActorFromContext returns the actor stored by Authenticate. The zero actor
// means the route skipped authentication.
func ActorFromContext(c echo.Context) usecase.Actor {
	actor, _ := c.Get(actorContextKey).(usecase.Actor)

	return actor
}
