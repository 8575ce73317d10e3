package memory

import (
	"sync"

	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo colección de productos en memoria.
type ProductRepo struct {
	mu     sync.Mutex
	items  []*entity.Product
	nextID int
}

// NewProductRepo construye la colección vacía.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{nextID: 1}
}

// Create asigna el ID y agrega el producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia del producto, o nil, nil si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto por ID. No-op si no existe.
func (r *ProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == p.ID {
			cp := *p
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// Delete elimina el producto por ID. No-op si no existe.
func (r *ProductRepo) Delete(id int) error {
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

// List devuelve copias de todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// AdjustStock suma delta al stock con piso en 0.
// Producto inexistente: no-op silencioso (referencia colgante tolerada).
func (r *ProductRepo) AdjustStock(productID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == productID {
			p.Stock += delta
			if p.Stock < 0 {
				p.Stock = 0
			}
			return nil
		}
	}
	return nil
}
