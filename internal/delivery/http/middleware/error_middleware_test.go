package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/machines", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_DomainError(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newTestContext()

	mw.HandleHTTPError(errors.WithStack(domainerrors.ErrNotFound.WrapMessage("machine not found")), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	assert.Contains(t, rec.Body.String(), "machine not found")
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newTestContext()

	mw.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestHandleHTTPError_UnknownErrorIsInternal(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newTestContext()

	mw.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Internal failure details stay out of the response body.
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestHandleHTTPError_CommittedResponseUntouched(t *testing.T) {
	mw := newTestErrorMiddleware()
	c, rec := newTestContext()

	c.Response().WriteHeader(http.StatusOK)
	mw.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}
