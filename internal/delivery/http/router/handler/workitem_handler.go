package handler

import (
	"log/slog"
	"net/http"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WorkItemHandler holds dependencies for work-item handlers.
type WorkItemHandler struct {
	uc     usecase.WorkItemUsecase
	logger *slog.Logger
}

// NewWorkItemHandler is the constructor for WorkItemHandler, injected by Fx.
func NewWorkItemHandler(uc usecase.WorkItemUsecase, logger *slog.Logger) *WorkItemHandler {
	return &WorkItemHandler{uc: uc, logger: logger}
}

// List returns work items matching the query string filters, newest first.
func (h *WorkItemHandler) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListByWorkLog returns every work item belonging to the given work log.
func (h *WorkItemHandler) ListByWorkLog(c echo.Context) error {
	workLogID, err := pathID(c, "workLogId")
	if err != nil {
		return err
	}

	items, err := h.uc.ListByWorkLog(c.Request().Context(), workLogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListByOwner returns work items recorded by the given user.
func (h *WorkItemHandler) ListByOwner(c echo.Context) error {
	ownerID, err := pathID(c, "ownerId")
	if err != nil {
		return err
	}

	items, err := h.uc.ListByOwner(c.Request().Context(), ownerID, listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// ListByMachine returns work items performed on the given machine.
func (h *WorkItemHandler) ListByMachine(c echo.Context) error {
	machineID, err := pathID(c, "machineId")
	if err != nil {
		return err
	}

	items, err := h.uc.ListByMachine(c.Request().Context(), machineID, listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Filter returns work items matching a filter document posted in the body.
func (h *WorkItemHandler) Filter(c echo.Context) error {
	var req filterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	items, err := h.uc.List(c.Request().Context(), req.toListQuery())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Get returns a single work item.
func (h *WorkItemHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// Create records a new work item under its work log.
func (h *WorkItemHandler) Create(c echo.Context) error {
	var input usecase.WorkItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work item input")
	}

	item, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Work item created")
}

// Update merges the provided fields into the stored work item.
func (h *WorkItemHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.WorkItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid work item input")
	}

	item, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Work item updated")
}

// Delete removes a work item.
func (h *WorkItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// WorkTypes lists the task classifications in order.
func (h *WorkItemHandler) WorkTypes(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.WorkTypes(), "")
}
