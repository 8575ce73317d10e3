package repository

import "github.com/fiorellalancissi/Vittorea/internal/domain/entity"

// BrandRepository acceso a las marcas (gestionadas inline desde productos).
type BrandRepository interface {
	Create(b *entity.Brand) error
	GetByID(id int) (*entity.Brand, error)
	// GetByName compara sin distinguir mayúsculas (nombre normalizado NFC).
	GetByName(name string) (*entity.Brand, error)
	Update(b *entity.Brand) error
	Delete(id int) error
	List() ([]*entity.Brand, error)
}

// LineRepository acceso a las líneas olfativas.
type LineRepository interface {
	Create(l *entity.Line) error
	GetByID(id int) (*entity.Line, error)
	GetByName(name string) (*entity.Line, error)
	List() ([]*entity.Line, error)
}

// VolumeRepository acceso a las presentaciones en ml.
type VolumeRepository interface {
	Create(v *entity.VolumeOption) error
	GetByID(id int) (*entity.VolumeOption, error)
	GetByValue(value int) (*entity.VolumeOption, error)
	List() ([]*entity.VolumeOption, error)
}
