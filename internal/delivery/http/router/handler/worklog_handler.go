package handler

import (
	"log/slog"
	"net/http"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkLogHandler holds dependencies for work-log handlers.
type WorkLogHandler struct {
	uc     usecase.WorkLogUsecase
	logger *slog.Logger
}

// NewWorkLogHandler is the constructor for WorkLogHandler, injected by Fx.
func NewWorkLogHandler(uc usecase.WorkLogUsecase, logger *slog.Logger) *WorkLogHandler {
	return &WorkLogHandler{uc: uc, logger: logger}
}

// List returns work logs matching the query string filters, newest first.
func (h *WorkLogHandler) List(c echo.Context) error {
	logs, err := h.uc.List(c.Request().Context(), listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}

// ListByOwner returns work logs that include the given user among their owners.
func (h *WorkLogHandler) ListByOwner(c echo.Context) error {
	ownerID, err := pathID(c, "ownerId")
	if err != nil {
		return err
	}

	logs, err := h.uc.ListByOwner(c.Request().Context(), ownerID, listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}

// Filter returns work logs matching a filter document posted in the body.
// It exists for filters too rich to express as query string pairs.
func (h *WorkLogHandler) Filter(c echo.Context) error {
	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	logs, err := h.uc.List(c.Request().Context(), req.toListQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}

// Get returns a single work log with owners and site resolved.
func (h *WorkLogHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	log, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, log, "")
}

// Create records a new work log.
func (h *WorkLogHandler) Create(c echo.Context) error {
	var input usecase.WorkLogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work log input")
	}

	log, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, log, "Work log created")
}

// Update merges the provided fields into the stored work log.
func (h *WorkLogHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.WorkLogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work log input")
	}

	log, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, log, "Work log updated")
}

// Delete removes a work log.
func (h *WorkLogHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
