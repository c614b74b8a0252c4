package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ZzzGreay/LanyuERP-BE/internal/delivery/http/response"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SiteHandler holds dependencies for site-related handlers.
type SiteHandler struct {
	uc     usecase.SiteUsecase
	logger *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(uc usecase.SiteUsecase, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{uc: uc, logger: logger}
}

// List returns sites matching the query string filters, name ascending.
func (h *SiteHandler) List(c echo.Context) error {
	sites, err := h.uc.List(c.Request().Context(), listQueryFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sites, "")
}

// Get returns a single site with owner and client names resolved.
func (h *SiteHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	site, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, site, "")
}

// Nearby returns the closest other sites by great-circle distance.
func (h *SiteHandler) Nearby(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	sites, err := h.uc.Nearby(c.Request().Context(), id, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sites, "")
}

// Create registers a new site.
func (h *SiteHandler) Create(c echo.Context) error {
	var input usecase.SiteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid site input")
	}

	site, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, site, "Site created")
}

// Update merges the provided fields into the stored site.
func (h *SiteHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.SiteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid site input")
	}

	site, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, site, "Site updated")
}

// Delete removes a site.
func (h *SiteHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
