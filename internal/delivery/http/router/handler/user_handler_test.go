package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserUsecase struct {
	user *usecase.UserDTO
}

func (f *fakeUserUsecase) Get(ctx context.Context, id uuid.UUID) (*usecase.UserDTO, error) {
	if f.user == nil || f.user.ID != id {
		return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
	}

	return f.user, nil
}

func (f *fakeUserUsecase) List(ctx context.Context, query repository.ListQuery) ([]*usecase.UserDTO, error) {
	if f.user == nil {
		return []*usecase.UserDTO{}, nil
	}

	return []*usecase.UserDTO{f.user}, nil
}

func (f *fakeUserUsecase) Create(ctx context.Context, input usecase.UserInput) (*usecase.UserDTO, error) {
	f.user = &usecase.UserDTO{ID: uuid.New(), Role: "user"}
	if input.Name != nil {
		f.user.Name = *input.Name
	}

	return f.user, nil
}

func (f *fakeUserUsecase) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UserInput) (*usecase.UserDTO, error) {
	return f.Get(ctx, id)
}

func (f *fakeUserUsecase) Replace(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UserInput) (*usecase.UserDTO, error) {
	return f.Get(ctx, id)
}

func (f *fakeUserUsecase) Roles() []string {
	return []string{"admin", "user"}
}

func (f *fakeUserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if f.user == nil || f.user.ID != id {
		return domainerrors.ErrNotFound.WrapMessage("user not found")
	}
	f.user = nil

	return nil
}

func newTestUserHandler(user *usecase.UserDTO) *UserHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserHandler(&fakeUserUsecase{user: user}, logger)
}

func TestUserHandler_Get_ReturnsEnvelope(t *testing.T) {
	user := &usecase.UserDTO{ID: uuid.New(), Name: "Tian Wang", Role: "user"}
	h := newTestUserHandler(user)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/"+user.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.String())

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Tian Wang")
}

func TestUserHandler_Get_MalformedIDIsNotFound(t *testing.T) {
	h := newTestUserHandler(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestUserHandler_Create_InvalidJSONIsRejected(t *testing.T) {
	h := newTestUserHandler(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestUserHandler_Delete_NoContent(t *testing.T) {
	user := &usecase.UserDTO{ID: uuid.New(), Name: "Tian Wang"}
	h := newTestUserHandler(user)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/users/"+user.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.String())

	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
