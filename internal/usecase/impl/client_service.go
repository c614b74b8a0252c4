package impl

import (
	"context"
	"log/slog"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// clientService implements the ClientUsecase interface.
type clientService struct {
	clients repository.ClientRepository
	logger  *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(clients repository.ClientRepository, logger *slog.Logger) usecase.ClientUsecase {
	return &clientService{clients: clients, logger: logger}
}

// Get retrieves a single client.
func (srv *clientService) Get(ctx context.Context, id uuid.UUID) (*usecase.ClientDTO, error) {
	client, err := srv.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("client not found")
		}

		return nil, errors.Wrap(err, "failed to get client")
	}

	return usecase.ToClientDTO(client), nil
}

// List returns clients matching the query, newest first.
func (srv *clientService) List(ctx context.Context, query repository.ListQuery) ([]*usecase.ClientDTO, error) {
	query = query.Normalize(usecase.DefaultPerPageClients)

	clients, err := srv.clients.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	dtos := make([]*usecase.ClientDTO, 0, len(clients))
	for _, client := range clients {
		dtos = append(dtos, usecase.ToClientDTO(client))
	}

	return dtos, nil
}

// Create files a new client organization.
func (srv *clientService) Create(ctx context.Context, input usecase.ClientInput) (*usecase.ClientDTO, error) {
	name, err := requireString(input.Name, "name")
	if err != nil {
		return nil, err
	}

	client := &entity.Client{
		Name:              name,
		ContractStartDate: stringOr(input.ContractStartDate, ""),
		ContractEndDate:   stringOr(input.ContractEndDate, ""),
		ContractType:      stringOr(input.ContractType, ""),
		Note:              stringOr(input.Note, ""),
	}

	if err := srv.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	srv.logger.Info("client created",
		slog.String("clientID", client.ID.String()),
		slog.String("name", client.Name))

	return usecase.ToClientDTO(client), nil
}

// Update merges the provided fields into the stored client.
func (srv *clientService) Update(ctx context.Context, id uuid.UUID, input usecase.ClientInput) (*usecase.ClientDTO, error) {
	patch := &entity.Client{
		ID:                id,
		Name:              stringOr(input.Name, ""),
		ContractStartDate: stringOr(input.ContractStartDate, ""),
		ContractEndDate:   stringOr(input.ContractEndDate, ""),
		ContractType:      stringOr(input.ContractType, ""),
		Note:              stringOr(input.Note, ""),
	}

	if err := srv.clients.Update(ctx, patch); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("client not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Replace overwrites the whole client record, keeping the id.
func (srv *clientService) Replace(ctx context.Context, id uuid.UUID, input usecase.ClientInput) (*usecase.ClientDTO, error) {
	name, err := requireString(input.Name, "name")
	if err != nil {
		return nil, err
	}

	replacement := &entity.Client{
		ID:                id,
		Name:              name,
		ContractStartDate: stringOr(input.ContractStartDate, ""),
		ContractEndDate:   stringOr(input.ContractEndDate, ""),
		ContractType:      stringOr(input.ContractType, ""),
		Note:              stringOr(input.Note, ""),
	}

	if err := srv.clients.Replace(ctx, replacement); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("client not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Delete removes a client. Sites keep their dangling reference.
func (srv *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.clients.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("client not found")
		}

		return errors.Wrap(err, "failed to delete client")
	}

	srv.logger.Info("client deleted", slog.String("clientID", id.String()))

	return nil
}

// ContractTypes lists the contract type labels offered by the UI.
func (srv *clientService) ContractTypes() []string {
	return entity.ContractTypes
}
