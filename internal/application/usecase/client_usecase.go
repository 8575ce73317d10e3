package usecase

import (
	"time"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/domain"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

// ClientUseCase CRUD de clientes del back-office.
// El alta implícita por venta vive en el caso de uso de pedidos.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create alta manual de un cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	client := &entity.Client{
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		LastPurchase:  time.Now(),
		InternalNotes: in.InternalNotes,
		Tags:          in.Tags,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID devuelve el cliente, o nil, nil si no existe.
func (uc *ClientUseCase) GetByID(id int) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil || client == nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update actualiza los campos indicados. Devuelve nil, nil si no existe.
func (uc *ClientUseCase) Update(id int, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil || client == nil {
		return nil, err
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.InternalNotes != nil {
		client.InternalNotes = *in.InternalNotes
	}
	if in.Tags != nil {
		client.Tags = in.Tags
	}
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina el cliente; pedidos y feedback asociados quedan colgantes.
func (uc *ClientUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

// List devuelve todos los clientes.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		LastPurchase:  c.LastPurchase,
		InternalNotes: c.InternalNotes,
		Tags:          c.Tags,
	}
}
