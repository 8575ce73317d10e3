package memory

import (
	"sync"

	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

var (
	_ repository.BrandRepository  = (*BrandRepo)(nil)
	_ repository.LineRepository   = (*LineRepo)(nil)
	_ repository.VolumeRepository = (*VolumeRepo)(nil)
)

// BrandRepo colección de marcas en memoria.
type BrandRepo struct {
	mu     sync.Mutex
	items  []*entity.Brand
	nextID int
}

// NewBrandRepo construye la colección vacía.
func NewBrandRepo() *BrandRepo {
	return &BrandRepo{nextID: 1}
}

// Create asigna el ID y agrega la marca.
func (r *BrandRepo) Create(b *entity.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia de la marca, o nil, nil si no existe.
func (r *BrandRepo) GetByID(id int) (*entity.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.items {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByName busca por nombre normalizado (case-insensitive).
func (r *BrandRepo) GetByName(name string) (*entity.Brand, error) {
	key := normalizeName(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.items {
		if normalizeName(b.Name) == key {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza la marca por ID. No-op si no existe.
func (r *BrandRepo) Update(b *entity.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == b.ID {
			cp := *b
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

// Delete elimina la marca. Los productos que la referencien quedan con
// marca colgante y se muestran como "Sin marca".
func (r *BrandRepo) Delete(id int) error {
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

// List devuelve copias de todas las marcas.
func (r *BrandRepo) List() ([]*entity.Brand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Brand, 0, len(r.items))
	for _, b := range r.items {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

// LineRepo colección de líneas olfativas en memoria.
type LineRepo struct {
	mu     sync.Mutex
	items  []*entity.Line
	nextID int
}

// NewLineRepo construye la colección vacía.
func NewLineRepo() *LineRepo {
	return &LineRepo{nextID: 1}
}

// Create asigna el ID y agrega la línea.
func (r *LineRepo) Create(l *entity.Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = r.nextID
	r.nextID++
	cp := *l
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia de la línea, o nil, nil si no existe.
func (r *LineRepo) GetByID(id int) (*entity.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.items {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByName busca por nombre normalizado (case-insensitive).
func (r *LineRepo) GetByName(name string) (*entity.Line, error) {
	key := normalizeName(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.items {
		if normalizeName(l.Name) == key {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todas las líneas.
func (r *LineRepo) List() ([]*entity.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Line, 0, len(r.items))
	for _, l := range r.items {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

// VolumeRepo colección de presentaciones en ml en memoria.
type VolumeRepo struct {
	mu     sync.Mutex
	items  []*entity.VolumeOption
	nextID int
}

// NewVolumeRepo construye la colección vacía.
func NewVolumeRepo() *VolumeRepo {
	return &VolumeRepo{nextID: 1}
}

// Create asigna el ID y agrega la presentación.
func (r *VolumeRepo) Create(v *entity.VolumeOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.ID = r.nextID
	r.nextID++
	cp := *v
	r.items = append(r.items, &cp)
	return nil
}

// GetByID devuelve una copia de la presentación, o nil, nil si no existe.
func (r *VolumeRepo) GetByID(id int) (*entity.VolumeOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByValue deduplica por valor exacto en ml.
func (r *VolumeRepo) GetByValue(value int) (*entity.VolumeOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.Value == value {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todas las presentaciones.
func (r *VolumeRepo) List() ([]*entity.VolumeOption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.VolumeOption, 0, len(r.items))
	for _, v := range r.items {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}
