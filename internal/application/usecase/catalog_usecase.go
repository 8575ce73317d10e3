package usecase

import (
	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

// CatalogUseCase gestiona marcas, líneas y presentaciones en ml.
// No tienen módulo propio en el panel: se administran inline desde productos
// con find-or-create.
type CatalogUseCase struct {
	brandRepo  repository.BrandRepository
	lineRepo   repository.LineRepository
	volumeRepo repository.VolumeRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	brandRepo repository.BrandRepository,
	lineRepo repository.LineRepository,
	volumeRepo repository.VolumeRepository,
) *CatalogUseCase {
	return &CatalogUseCase{brandRepo: brandRepo, lineRepo: lineRepo, volumeRepo: volumeRepo}
}

// FindOrCreateBrand devuelve el ID de la marca, creándola si no existe.
// La comparación es case-insensitive. Nombre vacío devuelve 0 (sin marca).
func (uc *CatalogUseCase) FindOrCreateBrand(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	existing, err := uc.brandRepo.GetByName(name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}
	b := &entity.Brand{Name: name, Active: true}
	if err := uc.brandRepo.Create(b); err != nil {
		return 0, err
	}
	return b.ID, nil
}

// FindOrCreateLine igual que marcas; nombre vacío devuelve 0.
func (uc *CatalogUseCase) FindOrCreateLine(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	existing, err := uc.lineRepo.GetByName(name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}
	l := &entity.Line{Name: name, Active: true}
	if err := uc.lineRepo.Create(l); err != nil {
		return 0, err
	}
	return l.ID, nil
}

// FindOrCreateVolume deduplica por valor exacto; 0 ml devuelve 0.
func (uc *CatalogUseCase) FindOrCreateVolume(value int) (int, error) {
	if value == 0 {
		return 0, nil
	}
	existing, err := uc.volumeRepo.GetByValue(value)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}
	v := &entity.VolumeOption{Value: value, Active: true}
	if err := uc.volumeRepo.Create(v); err != nil {
		return 0, err
	}
	return v.ID, nil
}

// ListBrands lista todas las marcas.
func (uc *CatalogUseCase) ListBrands() ([]dto.BrandResponse, error) {
	list, err := uc.brandRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BrandResponse{ID: b.ID, Name: b.Name, Active: b.Active})
	}
	return out, nil
}

// ListLines lista todas las líneas.
func (uc *CatalogUseCase) ListLines() ([]dto.LineResponse, error) {
	list, err := uc.lineRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LineResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dto.LineResponse{ID: l.ID, Name: l.Name, Active: l.Active})
	}
	return out, nil
}

// ListVolumes lista todas las presentaciones.
func (uc *CatalogUseCase) ListVolumes() ([]dto.VolumeResponse, error) {
	list, err := uc.volumeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VolumeResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.VolumeResponse{ID: v.ID, Value: v.Value, Active: v.Active})
	}
	return out, nil
}

// DeleteBrand elimina una marca; los productos que la referencien pasan a
// mostrarse como "Sin marca".
func (uc *CatalogUseCase) DeleteBrand(id int) error {
	return uc.brandRepo.Delete(id)
}
