package memory

import (
	"sync"

	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

var _ repository.FeedbackRepository = (*FeedbackRepo)(nil)

// FeedbackRepo colección de feedback post-venta en memoria.
type FeedbackRepo struct {
	mu     sync.Mutex
	items  []*entity.Feedback
	nextID int
}

// NewFeedbackRepo construye la colección vacía.
func NewFeedbackRepo() *FeedbackRepo {
	return &FeedbackRepo{nextID: 1}
}

// Create asigna el ID y agrega el feedback.
func (r *FeedbackRepo) Create(f *entity.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = r.nextID
	r.nextID++
	cp := *f
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia del feedback, o nil, nil si no existe.
func (r *FeedbackRepo) GetByID(id int) (*entity.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.items {
		if f.ID == id {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el feedback por ID. No-op si no existe.
func (r *FeedbackRepo) Update(f *entity.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == f.ID {
			cp := *f
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// Delete elimina el feedback por ID. No-op si no existe.
func (r *FeedbackRepo) Delete(id int) error {
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

// List devuelve copias de todo el feedback.
func (r *FeedbackRepo) List() ([]*entity.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Feedback, 0, len(r.items))
	for _, f := range r.items {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

// ListByClient devuelve el feedback de un cliente.
func (r *FeedbackRepo) ListByClient(clientID int) ([]*entity.Feedback, error) {
	return r.filter(func(f *entity.Feedback) bool { return f.ClientID == clientID })
}

// ListByProduct devuelve el feedback de un producto.
func (r *FeedbackRepo) ListByProduct(productID int) ([]*entity.Feedback, error) {
	return r.filter(func(f *entity.Feedback) bool { return f.ProductID == productID })
}

func (r *FeedbackRepo) filter(keep func(*entity.Feedback) bool) ([]*entity.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Feedback
	for _, f := range r.items {
		if keep(f) {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}
