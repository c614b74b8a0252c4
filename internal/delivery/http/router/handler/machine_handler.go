package handler

import (
	"log/slog"
	"net/http"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MachineHandler holds dependencies for machine-related handlers.
type MachineHandler struct {
	uc     usecase.MachineUsecase
	logger *slog.Logger
}

// NewMachineHandler is the constructor for MachineHandler, injected by Fx.
func NewMachineHandler(uc usecase.MachineUsecase, logger *slog.Logger) *MachineHandler {
	return &MachineHandler{uc: uc, logger: logger}
}

// List returns machines matching the query string filters, newest first.
func (h *MachineHandler) List(c echo.Context) error {
	machines, err := h.uc.List(c.Request().Context(), listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, machines, "")
}

// ListBySite returns all machines installed at the given site.
func (h *MachineHandler) ListBySite(c echo.Context) error {
	siteID, err := pathID(c, "siteId")
	if err != nil {
		return err
	}

	machines, err := h.uc.ListBySite(c.Request().Context(), siteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, machines, "")
}

// Get returns a single machine with its site resolved.
func (h *MachineHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	machine, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, machine, "")
}

// Create registers a new machine.
func (h *MachineHandler) Create(c echo.Context) error {
	var input usecase.MachineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid machine input")
	}

	machine, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, machine, "Machine created")
}

// Update merges the provided fields into the stored machine.
func (h *MachineHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.MachineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid machine input")
	}

	machine, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, machine, "Machine updated")
}

// Replace overwrites the whole machine record, keeping the slot counters.
func (h *MachineHandler) Replace(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.MachineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid machine input")
	}

	machine, err := h.uc.Replace(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, machine, "Machine replaced")
}

// Delete removes a machine.
func (h *MachineHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// States lists the machine lifecycle states in order.
func (h *MachineHandler) States(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.States(), "")
}

// QRCode streams the printable PNG label for a machine.
func (h *MachineHandler) QRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.QRCode(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
