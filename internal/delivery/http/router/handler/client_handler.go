package handler

import (
	"log/slog"
	"net/http"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClientHandler holds dependencies for client-related handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, logger: logger}
}

// List returns clients matching the query string filters, newest first.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.uc.List(c.Request().Context(), listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clients, "")
}

// Get returns a single client.
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	client, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "")
}

// Create files a new client organization.
func (h *ClientHandler) Create(c echo.Context) error {
	var input usecase.ClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	client, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, client, "Client created")
}

// Update merges the provided fields into the stored client.
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	client, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "Client updated")
}

// Replace overwrites the whole client record.
func (h *ClientHandler) Replace(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	client, err := h.uc.Replace(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "Client replaced")
}

// Delete removes a client.
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ContractTypes lists the contract type labels.
func (h *ClientHandler) ContractTypes(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.ContractTypes(), "")
}
