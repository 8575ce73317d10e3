package repository

import "github.com/fiorellalancissi/Vittorea/internal/domain/entity"

// FeedbackRepository acceso a la colección de feedback post-venta.
type FeedbackRepository interface {
	Create(f *entity.Feedback) error
	GetByID(id int) (*entity.Feedback, error)
	Update(f *entity.Feedback) error
	Delete(id int) error
	List() ([]*entity.Feedback, error)
	ListByClient(clientID int) ([]*entity.Feedback, error)
	ListByProduct(productID int) ([]*entity.Feedback, error)
}
