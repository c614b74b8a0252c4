package handler

import (
	"log/slog"
	"net/http"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/middleware"
	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type loginRequest struct {
	AuthCode string `json:"authCode"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Identity     string `json:"identity"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges an external one-time auth code for a session. First contact
// auto-registers the account and answers 201.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	result, err := h.uc.Login(c.Request().Context(), input.AuthCode)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, result, "Login successful")
}

// SignIn authenticates a local username/password credential.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var input signInRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	result, err := h.uc.SignIn(c.Request().Context(), input.Username, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Sign-in successful")
}

// RefreshToken redeems a single-use refresh token for a fresh pair.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input refreshRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	result, err := h.uc.Refresh(c.Request().Context(), input.Identity, input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Token refreshed successfully")
}

// Logout revokes every refresh token of the authenticated actor.
func (h *AuthHandler) Logout(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	if err := h.uc.Logout(c.Request().Context(), actor.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
