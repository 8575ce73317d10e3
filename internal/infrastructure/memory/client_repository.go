package memory

import (
	"sync"

	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo colección de clientes en memoria.
type ClientRepo struct {
	mu     sync.Mutex
	items  []*entity.Client
	nextID int
}

// NewClientRepo construye la colección vacía.
func NewClientRepo() *ClientRepo {
	return &ClientRepo{nextID: 1}
}

func cloneClient(c *entity.Client) *entity.Client {
	cp := *c
	if c.Tags != nil {
		cp.Tags = append([]string(nil), c.Tags...)
	}
	return &cp
}

// Create asigna el ID y agrega el cliente.
func (r *ClientRepo) Create(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.items = append(r.items, cloneClient(c))
	return nil
}

// GetByID devuelve una copia del cliente, o nil, nil si no existe.
func (r *ClientRepo) GetByID(id int) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.ID == id {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

// GetByPhone busca por teléfono exacto (clave natural de deduplicación).
func (r *ClientRepo) GetByPhone(phone string) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if c.Phone == phone {
			return cloneClient(c), nil
		}
	}
	return nil, nil
}

// Update reemplaza el cliente por ID. No-op si no existe.
func (r *ClientRepo) Update(c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == c.ID {
			r.items[i] = cloneClient(c)
			return nil
		}
	}
	return nil
}

// Delete elimina el cliente por ID. No borra en cascada: los pedidos y
// feedback que lo referencien quedan colgantes y se resuelven al leer.
func (r *ClientRepo) Delete(id int) error {
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

// List devuelve copias de todos los clientes.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Client, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, cloneClient(c))
	}
	return out, nil
}
