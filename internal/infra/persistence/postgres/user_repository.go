package postgres

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userFilterColumns whitelists the filterable columns for user listings.
var userFilterColumns = map[string]string{
	"name":       "name",
	"username":   "username",
	"role":       "role",
	"externalId": "external_id",
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByExternalID retrieves a single user by their id at the identity provider.
func (repo *userRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by external id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their local login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// List returns users matching the query, ordered by name ascending.
func (repo *userRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.User, error) {
	var models []*model.UserModel
	tx := applyListQuery(repo.db.WithContext(ctx), query, userFilterColumns, "name asc")
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for _, userM := range models {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, "user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update merges the non-zero fields of the entity into the stored record.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(userM)
	if result.Error != nil {
		return translateWriteError(result.Error, "user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Replace overwrites the whole record body while preserving the id.
func (repo *userRepository) Replace(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(userM)
	if result.Error != nil {
		return translateWriteError(result.Error, "user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by their ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:            data.ID,
		Name:          data.Name,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		LastLoginTime: data.LastLoginTime,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.ExternalID != nil {
		user.ExternalID = *data.ExternalID
	}
	if data.Username != nil {
		user.Username = *data.Username
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
// Optional identifiers are stored as NULL rather than empty strings so the
// unique indexes stay meaningful.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:            data.ID,
		Name:          data.Name,
		PasswordHash:  data.PasswordHash,
		Role:          data.Role.String(),
		LastLoginTime: data.LastLoginTime,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.ExternalID != "" {
		userM.ExternalID = &data.ExternalID
	}
	if data.Username != "" {
		userM.Username = &data.Username
	}

	return userM
}
