package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Las transiciones de estado inválidas del ledger NO generan error: son
// no-op silenciosos (contrato heredado del panel original). Estos errores
// cubren el resto de los casos.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrPaymentAPI   = errors.New("error del proveedor de pagos")
)
