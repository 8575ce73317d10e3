package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa un pedido/venta, siempre asociado a un cliente.
// UnitPrice y CostPrice son fotos del precio del producto al momento de la
// venta: cambios posteriores del producto no alteran pedidos históricos.
type Order struct {
	ID        int
	ClientID  int
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
	CostPrice decimal.Decimal
	Date      time.Time
	Status    string // pendiente | confirmado | entregado
	Notes     string
}

// Total ingreso bruto del pedido.
func (o *Order) Total() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// Profit utilidad del pedido (precio de venta menos costo, por unidad vendida).
func (o *Order) Profit() decimal.Decimal {
	return o.UnitPrice.Sub(o.CostPrice).Mul(decimal.NewFromInt(int64(o.Quantity)))
}
