package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Get retrieves a single user.
func (srv *userService) Get(ctx context.Context, id uuid.UUID) (*usecase.UserDTO, error) {
	user, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return usecase.ToUserDTO(user), nil
}

// List returns users matching the query, name ascending.
func (srv *userService) List(ctx context.Context, query repository.ListQuery) ([]*usecase.UserDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	users, err := srv.users.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	dtos := make([]*usecase.UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, usecase.ToUserDTO(user))
	}

	return dtos, nil
}

// Create registers a new user account. Admin-only at the route level.
func (srv *userService) Create(ctx context.Context, input usecase.UserInput) (*usecase.UserDTO, error) {
	name, err := requireString(input.Name, "name")
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:       name,
		ExternalID: stringOr(input.ExternalID, ""),
		Role:       entity.RoleUser,
	}
	if input.Username != nil {
		user.Username = strings.ToLower(*input.Username)
	}
	if input.Role != nil {
		role := entity.Role(*input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + *input.Role)
		}
		user.Role = role
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	if err := srv.users.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.logger.Info("user created",
		slog.String("userID", user.ID.String()),
		slog.String("name", user.Name))

	return usecase.ToUserDTO(user), nil
}

// Update merges the provided fields into the stored user. The role field is
// privileged: only an admin actor may change it.
func (srv *userService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UserInput) (*usecase.UserDTO, error) {
	patch, err := srv.buildPatch(actor, input)
	if err != nil {
		return nil, err
	}
	patch.ID = id

	if err := srv.users.Update(ctx, patch); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Replace overwrites the whole user record, keeping the id. The stored
// password hash survives unless a new password is supplied.
func (srv *userService) Replace(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UserInput) (*usecase.UserDTO, error) {
	current, err := srv.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	name, err := requireString(input.Name, "name")
	if err != nil {
		return nil, err
	}

	replacement := &entity.User{
		ID:            id,
		Name:          name,
		ExternalID:    stringOr(input.ExternalID, ""),
		Username:      strings.ToLower(stringOr(input.Username, "")),
		PasswordHash:  current.PasswordHash,
		Role:          current.Role,
		LastLoginTime: current.LastLoginTime,
	}
	if input.LastLoginTime != nil {
		replacement.LastLoginTime = *input.LastLoginTime
	}
	if input.Role != nil && *input.Role != current.Role.String() {
		if !actor.IsAdmin() {
			return nil, domainerrors.ErrForbidden.WrapMessage("only admins may change roles")
		}
		role := entity.Role(*input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + *input.Role)
		}
		replacement.Role = role
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		replacement.PasswordHash = hash
	}

	if err := srv.users.Replace(ctx, replacement); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Delete removes a user account. Work logs naming the user keep their rows.
func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("user deleted", slog.String("userID", id.String()))

	return nil
}

func (srv *userService) buildPatch(actor usecase.Actor, input usecase.UserInput) (*entity.User, error) {
	patch := &entity.User{}
	if input.Name != nil {
		patch.Name = *input.Name
	}
	if input.ExternalID != nil {
		patch.ExternalID = *input.ExternalID
	}
	if input.Username != nil {
		patch.Username = strings.ToLower(*input.Username)
	}
	if input.LastLoginTime != nil {
		patch.LastLoginTime = *input.LastLoginTime
	}
	if input.Role != nil {
		if !actor.IsAdmin() {
			return nil, domainerrors.ErrForbidden.WrapMessage("only admins may change roles")
		}
		role := entity.Role(*input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + *input.Role)
		}
		patch.Role = role
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		patch.PasswordHash = hash
	}

	return patch, nil
}

// Roles lists the assignable user roles.
func (srv *userService) Roles() []string {
	return entity.AllRoles.ToStrings()
}
