package handler

import (
	"log/slog"
	"net/http"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PartHandler holds dependencies for spare-part handlers.
type PartHandler struct {
	uc     usecase.PartUsecase
	logger *slog.Logger
}

// NewPartHandler is the constructor for PartHandler, injected by Fx.
func NewPartHandler(uc usecase.PartUsecase, logger *slog.Logger) *PartHandler {
	return &PartHandler{uc: uc, logger: logger}
}

// List returns spare parts matching the query string filters.
func (h *PartHandler) List(c echo.Context) error {
	parts, err := h.uc.List(c.Request().Context(), listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, parts, "")
}

// Get returns a single spare part.
func (h *PartHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	part, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, part, "")
}

// Create registers a new spare part.
func (h *PartHandler) Create(c echo.Context) error {
	var input usecase.PartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid part input")
	}

	part, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, part, "Part created")
}

// Update merges the provided fields into the stored part.
func (h *PartHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.PartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid part input")
	}

	part, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, part, "Part updated")
}

// Delete removes a spare part.
func (h *PartHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// States lists the part lifecycle states in order.
func (h *PartHandler) States(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.States(), "")
}
