package memory

import (
	"sync"

	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo colección de pedidos en memoria.
type OrderRepo struct {
	mu     sync.Mutex
	items  []*entity.Order
	nextID int
}

// NewOrderRepo construye la colección vacía.
func NewOrderRepo() *OrderRepo {
	return &OrderRepo{nextID: 1}
}

// Create asigna el ID y agrega el pedido.
func (r *OrderRepo) Create(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.nextID
	r.nextID++
	cp := *o
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia del pedido, o nil, nil si no existe.
func (r *OrderRepo) GetByID(id int) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.items {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el pedido por ID. No-op si no existe.
func (r *OrderRepo) Update(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == o.ID {
			cp := *o
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// List devuelve copias de todos los pedidos.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Order, 0, len(r.items))
	for _, o := range r.items {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

// ListByClient devuelve los pedidos de un cliente.
func (r *OrderRepo) ListByClient(clientID int) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.items {
		if o.ClientID == clientID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}
