package entity

import "time"

// Client representa un cliente del negocio.
// Se crea automáticamente al registrar una venta si no existe; el teléfono
// actúa como clave natural de deduplicación.
type Client struct {
	ID            int
	Name          string
	Phone         string
	Email         string
	LastPurchase  time.Time
	InternalNotes string
	Tags          []string
}
