package entity

import "github.com/shopspring/decimal"

// Product representa un perfume del catálogo.
// SalePrice se deriva de CostPrice (margen 40%) si no se indica explícito.
// Stock se maneja exclusivamente vía movimientos de inventario y nunca es negativo.
type Product struct {
	ID        int
	Name      string
	BrandID   int // 0 = sin marca
	LineID    int // 0 = sin línea
	VolumeID  int // 0 = sin volumen (ml)
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	Stock     int
	Active    bool
	Image     string
}
