// Package payments implementa el adaptador de checkout contra Mercado Pago.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/application/ports"
	"github.com/fiorellalancissi/Vittorea/internal/domain"
)

// Verificar en tiempo de compilación que MercadoPagoService implementa PaymentGateway.
var _ ports.PaymentGateway = (*MercadoPagoService)(nil)

const defaultBaseURL = "https://api.mercadopago.com"

// MercadoPagoService adaptador que implementa PaymentGateway usando la API REST
// de Checkout Pro. Usa net/http de la librería estándar; no requiere el SDK oficial.
type MercadoPagoService struct {
	accessToken string
	baseURL     string
	backURL     string
	httpClient  *http.Client
}

// NewMercadoPagoService construye el adaptador.
// baseURL vacío usa la API productiva; backURL es la URL de retorno del storefront.
// Si accessToken está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewMercadoPagoService(accessToken, baseURL, backURL string) *MercadoPagoService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &MercadoPagoService{
		accessToken: accessToken,
		baseURL:     baseURL,
		backURL:     backURL,
		httpClient: &http.Client{
			// Timeout de red de 15 s; el handler impone además un context.WithTimeout.
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo de preferencias ────────────────────────

type preferenceItem struct {
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type preferenceBackURLs struct {
	Success string `json:"success,omitempty"`
	Failure string `json:"failure,omitempty"`
	Pending string `json:"pending,omitempty"`
}

type preferenceRequest struct {
	Items             []preferenceItem    `json:"items"`
	ExternalReference string              `json:"external_reference"`
	BackURLs          *preferenceBackURLs `json:"back_urls,omitempty"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
	Message   string `json:"message"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// CreatePreference crea la preferencia de checkout para el pedido.
func (s *MercadoPagoService) CreatePreference(
	ctx context.Context,
	order *dto.OrderResponse,
) (*dto.PaymentPreferenceResponse, error) {
	if s.accessToken == "" {
		return nil, fmt.Errorf("pagos: MP_ACCESS_TOKEN no configurado")
	}

	payload := preferenceRequest{
		Items: []preferenceItem{{
			Title:     order.ProductName,
			Quantity:  order.Quantity,
			UnitPrice: order.UnitPrice,
		}},
		ExternalReference: fmt.Sprintf("pedido-%d", order.ID),
	}
	if s.backURL != "" {
		payload.BackURLs = &preferenceBackURLs{
			Success: s.backURL,
			Failure: s.backURL,
			Pending: s.backURL,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("pagos: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("pagos: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	// Clave de idempotencia por intento, exigida por la API de preferencias.
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pagos: llamada a Mercado Pago: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pagos: leer respuesta: %w", err)
	}

	var parsed preferenceResponse
	if err := json.Unmarshal(raw, &parsed); err != nil && resp.StatusCode < 300 {
		return nil, fmt.Errorf("pagos: decodificar respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Message != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrPaymentAPI, parsed.Message)
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrPaymentAPI, resp.StatusCode)
	}

	return &dto.PaymentPreferenceResponse{
		PreferenceID: parsed.ID,
		InitPoint:    parsed.InitPoint,
	}, nil
}
