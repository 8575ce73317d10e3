package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIngreso = "ingreso" // entrada: suma stock
	MovementTypeEgreso  = "egreso"  // salida: resta stock (ventas)
)

// Estados del ciclo de vida de movimientos y pedidos.
//
// Los egresos ligados a un pedido avanzan pendiente → confirmado → entregado;
// el stock se descuenta una única vez, al confirmar. Los ajustes manuales se
// crean directamente como completado y aplican stock en la creación.
const (
	StatusPendiente  = "pendiente"
	StatusConfirmado = "confirmado"
	StatusEntregado  = "entregado"
	StatusCompletado = "completado"
)

// Movement representa un movimiento de inventario.
type Movement struct {
	ID        int
	ProductID int
	Type      string // ingreso | egreso
	Quantity  int    // siempre positivo; el signo lo da Type
	Status    string
	OrderID   int // 0 = movimiento manual, sin pedido asociado
	Date      time.Time
	Reason    string
	Notes     string
}

// StockDelta devuelve el efecto del movimiento sobre el stock
// (+Quantity para ingreso, -Quantity para egreso).
func (m *Movement) StockDelta() int {
	if m.Type == MovementTypeIngreso {
		return m.Quantity
	}
	return -m.Quantity
}
