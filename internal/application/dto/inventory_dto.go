package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento manual.
// Status vacío equivale a "completado" (ajuste que aplica stock al crear).
type RegisterMovementRequest struct {
	ProductID int        `json:"product_id"`
	Type      string     `json:"type"` // ingreso | egreso
	Quantity  int        `json:"quantity"`
	Status    string     `json:"status"`
	Date      *time.Time `json:"date"`
	Reason    string     `json:"reason"`
	Notes     string     `json:"notes"`
}

// MovementResponse movimiento con el producto resuelto.
// ProductName cae en "Producto eliminado" ante referencia colgante.
type MovementResponse struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	OrderID     int       `json:"order_id,omitempty"`
	Date        time.Time `json:"date"`
	Reason      string    `json:"reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}
