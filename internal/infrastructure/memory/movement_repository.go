package memory

import (
	"sync"

	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo colección de movimientos de inventario en memoria.
type MovementRepo struct {
	mu     sync.Mutex
	items  []*entity.Movement
	nextID int
}

// NewMovementRepo construye la colección vacía.
func NewMovementRepo() *MovementRepo {
	return &MovementRepo{nextID: 1}
}

// Create asigna el ID y agrega el movimiento.
func (r *MovementRepo) Create(m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia del movimiento, o nil, nil si no existe.
func (r *MovementRepo) GetByID(id int) (*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.items {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el movimiento por ID. No-op si no existe.
func (r *MovementRepo) Update(m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == m.ID {
			cp := *m
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// Delete elimina el movimiento por ID. No-op si no existe.
func (r *MovementRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// List devuelve copias de todos los movimientos.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Movement, 0, len(r.items))
	for _, m := range r.items {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}
