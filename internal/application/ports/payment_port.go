package ports

import (
	"context"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
)

// PaymentGateway define el puerto de salida hacia el proveedor de pagos.
// Cualquier adaptador (Mercado Pago, mock de test) debe implementar esta
// interfaz; la capa de aplicación solo conoce este contrato.
type PaymentGateway interface {
	// CreatePreference crea una preferencia de checkout para un pedido.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	CreatePreference(
		ctx context.Context,
		order *dto.OrderResponse,
	) (*dto.PaymentPreferenceResponse, error)
}
