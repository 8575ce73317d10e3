// Package memory implementa los repositorios del ledger sobre colecciones
// en memoria. El modelo es el de una sola sesión de administración escribiendo
// a la vez: no hay transacciones entre colecciones; cada repositorio usa un
// mutex propio únicamente para que el acceso desde los handlers HTTP sea
// seguro a nivel de memoria.
//
// Los IDs son enteros asignados por un contador monotónico por colección
// (arranca en 1 y nunca se reutiliza, ni siquiera tras borrar el máximo).
package memory

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Store agrupa todos los repositorios en memoria del ledger.
// Las colecciones nacen vacías y viven lo que dure el proceso.
type Store struct {
	Products  *ProductRepo
	Clients   *ClientRepo
	Movements *MovementRepo
	Orders    *OrderRepo
	Feedbacks *FeedbackRepo
	Brands    *BrandRepo
	Lines     *LineRepo
	Volumes   *VolumeRepo
	Settings  *SettingsRepo
}

// NewStore construye el ledger vacío.
// reinvestmentPercent es el valor inicial del porcentaje de reinversión.
func NewStore(reinvestmentPercent int) *Store {
	return &Store{
		Products:  NewProductRepo(),
		Clients:   NewClientRepo(),
		Movements: NewMovementRepo(),
		Orders:    NewOrderRepo(),
		Feedbacks: NewFeedbackRepo(),
		Brands:    NewBrandRepo(),
		Lines:     NewLineRepo(),
		Volumes:   NewVolumeRepo(),
		Settings:  NewSettingsRepo(reinvestmentPercent),
	}
}

// normalizeName clave de comparación para nombres de marca/línea:
// recorta, normaliza Unicode a NFC (así "é" compuesta y descompuesta
// coinciden) y pasa a minúsculas.
func normalizeName(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
