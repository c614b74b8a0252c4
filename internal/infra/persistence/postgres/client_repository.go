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

// clientFilterColumns whitelists the filterable columns for client listings.
var clientFilterColumns = map[string]string{
	"name":         "name",
	"contractType": "contract_type",
}

// clientRepository implements the repository.ClientRepository interface using GORM.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// FindByID retrieves a single client by its unique ID.
func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientM model.ClientModel
	if err := repo.db.WithContext(ctx).First(&clientM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by id")
	}

	return toClientDomain(&clientM), nil
}

// List returns clients matching the query, newest first.
func (repo *clientRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Client, error) {
	var models []*model.ClientModel
	tx := applyListQuery(repo.db.WithContext(ctx), query, clientFilterColumns, "created_at desc")
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(models))
	for _, clientM := range models {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// Create persists a new client entity.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		return translateWriteError(err, "client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

// Update merges the non-zero fields of the entity into the stored record.
func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(clientM)
	if result.Error != nil {
		return translateWriteError(result.Error, "client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// Replace overwrites the whole record body while preserving the id.
func (repo *clientRepository) Replace(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(clientM)
	if result.Error != nil {
		return translateWriteError(result.Error, "client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// Delete removes a client by its ID. Sites referencing it keep their stale
// reference, there is no cascade.
func (repo *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:                data.ID,
		Name:              data.Name,
		ContractStartDate: data.ContractStartDate,
		ContractEndDate:   data.ContractEndDate,
		ContractType:      data.ContractType,
		Note:              data.Note,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	return &model.ClientModel{
		ID:                data.ID,
		Name:              data.Name,
		ContractStartDate: data.ContractStartDate,
		ContractEndDate:   data.ContractEndDate,
		ContractType:      data.ContractType,
		Note:              data.Note,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
