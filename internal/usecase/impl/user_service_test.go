package impl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

type userServiceFixtures struct {
	service usecase.UserUsecase
	users   *fakeUserRepo
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	users := newFakeUserRepo()
	svc := NewUserService(users, fakeHasher{}, newDiscardLogger())

	return userServiceFixtures{service: svc, users: users}
}

func adminActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
}

func regularActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleUser}
}

func TestUserService_Create_Defaults(t *testing.T) {
	fx := createTestUserService(t)

	dto, err := fx.service.Create(context.Background(), usecase.UserInput{
		Name:     strPtr("Zhang San"),
		Username: strPtr("ZhangSan"),
		Password: strPtr("secret"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser.String(), dto.Role)
	assert.Equal(t, "zhangsan", dto.Username, "login names are stored lowercased")

	stored := fx.users.byID[dto.ID]
	assert.Equal(t, "hashed:secret", stored.PasswordHash)
}

func TestUserService_Create_NameRequired(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Create(context.Background(), usecase.UserInput{
		Username: strPtr("zhangsan"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_DTO_NeverCarriesPasswordHash(t *testing.T) {
	fx := createTestUserService(t)

	dto, err := fx.service.Create(context.Background(), usecase.UserInput{
		Name:     strPtr("Zhang San"),
		Password: strPtr("secret"),
	})
	require.NoError(t, err)

	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "hashed")
	assert.NotContains(t, string(raw), "password")
}

func TestUserService_Update_RoleChangeRequiresAdmin(t *testing.T) {
	fx := createTestUserService(t)
	user := fx.users.add(&entity.User{Name: "Zhang San", Role: entity.RoleUser})

	_, err := fx.service.Update(context.Background(), regularActor(), user.ID, usecase.UserInput{
		Role: strPtr("admin"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())

	dto, err := fx.service.Update(context.Background(), adminActor(), user.ID, usecase.UserInput{
		Role: strPtr("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin.String(), dto.Role)
}

func TestUserService_Update_UnknownRoleRejected(t *testing.T) {
	fx := createTestUserService(t)
	user := fx.users.add(&entity.User{Name: "Zhang San", Role: entity.RoleUser})

	_, err := fx.service.Update(context.Background(), adminActor(), user.ID, usecase.UserInput{
		Role: strPtr("superuser"),
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_Update_MergesOnlyProvidedFields(t *testing.T) {
	fx := createTestUserService(t)
	user := fx.users.add(&entity.User{
		Name:       "Zhang San",
		Username:   "zhangsan",
		ExternalID: "ext-42",
		Role:       entity.RoleUser,
	})

	dto, err := fx.service.Update(context.Background(), regularActor(), user.ID, usecase.UserInput{
		Name: strPtr("Zhang San Jr."),
	})

	require.NoError(t, err)
	assert.Equal(t, "Zhang San Jr.", dto.Name)
	assert.Equal(t, "zhangsan", dto.Username)
	assert.Equal(t, "ext-42", dto.ExternalID)
}

func TestUserService_Replace_PreservesCredentialAndRole(t *testing.T) {
	fx := createTestUserService(t)
	user := fx.users.add(&entity.User{
		Name:          "Zhang San",
		Username:      "zhangsan",
		PasswordHash:  "hashed:old",
		Role:          entity.RoleAdmin,
		LastLoginTime: 12345,
	})

	dto, err := fx.service.Replace(context.Background(), adminActor(), user.ID, usecase.UserInput{
		Name:     strPtr("Zhang San"),
		Username: strPtr("zhangsan"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin.String(), dto.Role)
	assert.Equal(t, int64(12345), dto.LastLoginTime)
	assert.Equal(t, "hashed:old", fx.users.byID[user.ID].PasswordHash)
}

func TestUserService_Get_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Get(context.Background(), uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestUserService_List_NormalizesQuery(t *testing.T) {
	fx := createTestUserService(t)
	fx.users.add(&entity.User{Name: "Zhang San"})

	_, err := fx.service.List(context.Background(), repository.ListQuery{
		Filter: map[string]any{"name": "", "role": "admin", "city": nil},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, fx.users.lastQuery.Page)
	assert.Equal(t, usecase.DefaultPerPage, fx.users.lastQuery.PerPage)
	// Empty and nil filter values are dropped before the query runs.
	assert.Equal(t, map[string]any{"role": "admin"}, fx.users.lastQuery.Filter)
}

func TestUserService_Delete_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	err := fx.service.Delete(context.Background(), uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestUserService_Roles(t *testing.T) {
	fx := createTestUserService(t)

	assert.Equal(t, []string{"admin", "user"}, fx.service.Roles())
}
