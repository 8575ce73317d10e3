package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/application/orders"
	"github.com/fiorellalancissi/Vittorea/internal/application/ports"
	"github.com/fiorellalancissi/Vittorea/internal/domain"
)

// PaymentHandler crea preferencias de checkout para pedidos del storefront.
type PaymentHandler struct {
	orderUC *orders.OrderUseCase
	gateway ports.PaymentGateway
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(orderUC *orders.OrderUseCase, gateway ports.PaymentGateway) *PaymentHandler {
	return &PaymentHandler{orderUC: orderUC, gateway: gateway}
}

// CreatePreference godoc
// @Summary      Crear preferencia de pago para un pedido
// @Tags         storefront
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentPreferenceRequest  true  "Pedido a cobrar"
// @Success      201   {object}  dto.PaymentPreferenceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/payments/preference [post]
func (h *PaymentHandler) CreatePreference(c *fiber.Ctx) error {
	var in dto.PaymentPreferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.OrderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id es requerido"})
	}

	order, err := h.orderUC.GetByID(in.OrderID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()
	out, err := h.gateway.CreatePreference(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentAPI) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PAYMENT_API", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
