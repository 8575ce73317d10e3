package entity

import "time"

// Niveles de satisfacción del feedback post-venta.
const (
	SatisfactionPositivo = "positivo"
	SatisfactionNeutro   = "neutro"
	SatisfactionNegativo = "negativo"
)

// Feedback registra la percepción del cliente sobre un pedido.
// Es información interna del negocio, no visible para clientes.
type Feedback struct {
	ID                 int
	ClientID           int
	OrderID            int
	ProductID          int
	Satisfaction       string // positivo | neutro | negativo
	PerceivedDuration  string
	PerceivedIntensity string
	WouldRepurchase    bool
	Comment            string
	Date               time.Time
}
