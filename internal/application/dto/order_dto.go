package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para registrar una venta.
// El cliente se resuelve por teléfono con find-or-create. Los precios del
// body solo se usan como respaldo si el producto no existe al momento de
// crear el pedido.
type CreateOrderRequest struct {
	ClientName  string          `json:"client_name"`
	ClientPhone string          `json:"client_phone"`
	ClientEmail string          `json:"client_email"`
	ProductID   int             `json:"product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Date        *time.Time      `json:"date"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
}

// UpdateOrderRequest campos opcionales a actualizar.
type UpdateOrderRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// OrderResponse pedido con cliente, producto y totales resueltos.
type OrderResponse struct {
	ID          int             `json:"id"`
	ClientID    int             `json:"client_id"`
	ClientName  string          `json:"client_name,omitempty"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	Total       decimal.Decimal `json:"total"`
	Profit      decimal.Decimal `json:"profit"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
}

// CreateOrderResponse venta registrada: pedido + cliente resuelto.
type CreateOrderResponse struct {
	Order  OrderResponse  `json:"order"`
	Client ClientResponse `json:"client"`
}

// OrderStatusResponse vista pública del estado de un pedido (storefront).
type OrderStatusResponse struct {
	ID     int             `json:"id"`
	Status string          `json:"status"`
	Date   time.Time       `json:"date"`
	Total  decimal.Decimal `json:"total"`
}
