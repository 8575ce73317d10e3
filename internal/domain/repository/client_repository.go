package repository

import "github.com/fiorellalancissi/Vittorea/internal/domain/entity"

// ClientRepository acceso a la colección de clientes.
type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id int) (*entity.Client, error)
	// GetByPhone busca por teléfono (clave natural). nil, nil si no existe.
	GetByPhone(phone string) (*entity.Client, error)
	Update(c *entity.Client) error
	Delete(id int) error
	List() ([]*entity.Client, error)
}
