package repository

import "github.com/fiorellalancissi/Vittorea/internal/domain/entity"

// OrderRepository acceso a la colección de pedidos.
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByID(id int) (*entity.Order, error)
	Update(o *entity.Order) error
	List() ([]*entity.Order, error)
	ListByClient(clientID int) ([]*entity.Order, error)
}
