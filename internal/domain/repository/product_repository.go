package repository

import "github.com/fiorellalancissi/Vittorea/internal/domain/entity"

// ProductRepository acceso a la colección de productos.
type ProductRepository interface {
	// Create asigna el ID (contador monotónico) y agrega el producto.
	Create(p *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(id int) (*entity.Product, error)
	Update(p *entity.Product) error
	Delete(id int) error
	List() ([]*entity.Product, error)
	// AdjustStock suma delta al stock del producto, con piso en 0.
	// Si el producto no existe es un no-op silencioso.
	AdjustStock(productID, delta int) error
}
