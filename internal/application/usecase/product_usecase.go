package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/domain"
	"github.com/fiorellalancissi/Vittorea/internal/domain/entity"
	"github.com/fiorellalancissi/Vittorea/internal/domain/repository"
)

// Margen estándar sobre el costo para derivar el precio de venta.
var saleMarkup = decimal.NewFromFloat(1.4)

// CalculateSalePrice deriva el precio de venta: costo * 1.4 redondeado al entero.
func CalculateSalePrice(costPrice decimal.Decimal) decimal.Decimal {
	return costPrice.Mul(saleMarkup).Round(0)
}

// ProductUseCase casos de uso CRUD de productos. El stock se maneja
// exclusivamente vía movimientos de inventario.
type ProductUseCase struct {
	repo       repository.ProductRepository
	brandRepo  repository.BrandRepository
	lineRepo   repository.LineRepository
	volumeRepo repository.VolumeRepository
	catalog    *CatalogUseCase
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	brandRepo repository.BrandRepository,
	lineRepo repository.LineRepository,
	volumeRepo repository.VolumeRepository,
	catalog *CatalogUseCase,
) *ProductUseCase {
	return &ProductUseCase{
		repo:       repo,
		brandRepo:  brandRepo,
		lineRepo:   lineRepo,
		volumeRepo: volumeRepo,
		catalog:    catalog,
	}
}

// Create crea un producto resolviendo marca/línea/volumen con find-or-create.
// SalePrice en cero se deriva del costo con el margen estándar.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	brandID, err := uc.catalog.FindOrCreateBrand(in.Brand)
	if err != nil {
		return nil, err
	}
	lineID, err := uc.catalog.FindOrCreateLine(in.Line)
	if err != nil {
		return nil, err
	}
	volumeID, err := uc.catalog.FindOrCreateVolume(in.VolumeML)
	if err != nil {
		return nil, err
	}

	salePrice := in.SalePrice
	if salePrice.IsZero() {
		salePrice = CalculateSalePrice(in.CostPrice)
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	stock := in.Stock
	if stock < 0 {
		stock = 0
	}

	product := &entity.Product{
		Name:      in.Name,
		BrandID:   brandID,
		LineID:    lineID,
		VolumeID:  volumeID,
		CostPrice: in.CostPrice,
		SalePrice: salePrice,
		Stock:     stock,
		Active:    active,
		Image:     in.Image,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// GetByID devuelve el producto resuelto, o nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// Update actualiza un producto. Si cambia el costo sin precio de venta
// explícito, el precio de venta se recalcula con el margen estándar.
func (uc *ProductUseCase) Update(id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Brand != nil {
		brandID, err := uc.catalog.FindOrCreateBrand(*in.Brand)
		if err != nil {
			return nil, err
		}
		product.BrandID = brandID
	}
	if in.Line != nil {
		lineID, err := uc.catalog.FindOrCreateLine(*in.Line)
		if err != nil {
			return nil, err
		}
		product.LineID = lineID
	}
	if in.VolumeML != nil {
		volumeID, err := uc.catalog.FindOrCreateVolume(*in.VolumeML)
		if err != nil {
			return nil, err
		}
		product.VolumeID = volumeID
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
		if in.SalePrice == nil {
			product.SalePrice = CalculateSalePrice(*in.CostPrice)
		}
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if in.Image != nil {
		product.Image = *in.Image
	}

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product), nil
}

// Delete elimina el producto. Movimientos y pedidos que lo referencien quedan
// colgantes y se resuelven al leer.
func (uc *ProductUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

// List devuelve todos los productos (incluye inactivos y sin stock).
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *uc.toResponse(p))
	}
	return out, nil
}

// Catalog devuelve los productos visibles en el storefront:
// activos y con stock disponible.
func (uc *ProductUseCase) Catalog() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if p.Active && p.Stock > 0 {
			out = append(out, *uc.toResponse(p))
		}
	}
	return out, nil
}

// toResponse resuelve referencias con valores de respaldo ante colgantes.
func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	brandName := "Sin marca"
	if p.BrandID != 0 {
		if b, _ := uc.brandRepo.GetByID(p.BrandID); b != nil {
			brandName = b.Name
		}
	}
	lineName := ""
	if p.LineID != 0 {
		if l, _ := uc.lineRepo.GetByID(p.LineID); l != nil {
			lineName = l.Name
		}
	}
	volumeML := 0
	if p.VolumeID != 0 {
		if v, _ := uc.volumeRepo.GetByID(p.VolumeID); v != nil {
			volumeML = v.Value
		}
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		BrandID:   p.BrandID,
		Brand:     brandName,
		LineID:    p.LineID,
		Line:      lineName,
		VolumeID:  p.VolumeID,
		VolumeML:  volumeML,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Price:     p.SalePrice,
		Stock:     p.Stock,
		Active:    p.Active,
		Image:     p.Image,
	}
}
