package repository

import "github.com/fiorellalancissi/Vittorea/internal/domain/entity"

// MovementRepository acceso a la colección de movimientos de inventario.
type MovementRepository interface {
	Create(m *entity.Movement) error
	GetByID(id int) (*entity.Movement, error)
	Update(m *entity.Movement) error
	Delete(id int) error
	List() ([]*entity.Movement, error)
}
