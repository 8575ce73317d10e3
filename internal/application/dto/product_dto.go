package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// Brand/Line/VolumeML se resuelven con find-or-create; SalePrice en cero
// se deriva del costo con el margen estándar.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Line      string          `json:"line"`
	VolumeML  int             `json:"volume_ml"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Stock     int             `json:"stock"`
	Active    *bool           `json:"active"`
	Image     string          `json:"image"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// Si cambia CostPrice sin SalePrice, el precio de venta se recalcula.
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Brand     *string          `json:"brand"`
	Line      *string          `json:"line"`
	VolumeML  *int             `json:"volume_ml"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	SalePrice *decimal.Decimal `json:"sale_price"`
	Active    *bool            `json:"active"`
	Image     *string          `json:"image"`
}

// ProductResponse salida de un producto con las referencias resueltas.
// Brand cae en "Sin marca" si la marca fue eliminada. Price repite SalePrice
// para el contrato del storefront.
type ProductResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	BrandID   int             `json:"brand_id,omitempty"`
	Brand     string          `json:"brand"`
	LineID    int             `json:"line_id,omitempty"`
	Line      string          `json:"line,omitempty"`
	VolumeID  int             `json:"volume_id,omitempty"`
	VolumeML  int             `json:"volume_ml,omitempty"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Active    bool            `json:"active"`
	Image     string          `json:"image,omitempty"`
}

// BrandResponse marca para los selectores del back-office.
type BrandResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// LineResponse línea olfativa.
type LineResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// VolumeResponse presentación en ml.
type VolumeResponse struct {
	ID     int  `json:"id"`
	Value  int  `json:"value"`
	Active bool `json:"active"`
}
