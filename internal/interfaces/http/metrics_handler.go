package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fiorellalancissi/Vittorea/internal/application/analytics"
	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
)

// MetricsHandler expone las métricas del dashboard (protegido).
type MetricsHandler struct {
	uc        *analytics.MetricsUseCase
	generator analytics.ReportGenerator
}

// NewMetricsHandler construye el handler.
func NewMetricsHandler(uc *analytics.MetricsUseCase, generator analytics.ReportGenerator) *MetricsHandler {
	return &MetricsHandler{uc: uc, generator: generator}
}

// Stats godoc
// @Summary      Resumen general de stock, clientes y ventas
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsDTO
// @Router       /api/admin/metrics/summary [get]
func (h *MetricsHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesByMonth godoc
// @Summary      Ventas agrupadas por mes calendario
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MonthlySalesDTO
// @Router       /api/admin/metrics/sales-by-month [get]
func (h *MetricsHandler) SalesByMonth(c *fiber.Ctx) error {
	out, err := h.uc.SalesByMonth()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Ranking godoc
// @Summary      Ranking de productos por unidades vendidas
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RankingDTO
// @Router       /api/admin/metrics/ranking [get]
func (h *MetricsHandler) Ranking(c *fiber.Ctx) error {
	out, err := h.uc.ProductSalesRanking()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Rotation godoc
// @Summary      Rotación de inventario (unidades vendidas / stock actual)
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RotationDTO
// @Router       /api/admin/metrics/rotation [get]
func (h *MetricsHandler) Rotation(c *fiber.Ctx) error {
	rotation, err := h.uc.InventoryRotation()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.RotationDTO{Rotation: rotation})
}

// Financial godoc
// @Summary      Métricas financieras de vida y del mes en curso
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FinancialMetricsDTO
// @Router       /api/admin/metrics/financial [get]
func (h *MetricsHandler) Financial(c *fiber.Ctx) error {
	out, err := h.uc.FinancialMetrics()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Satisfaction godoc
// @Summary      Métricas de satisfacción del feedback post-venta
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SatisfactionMetricsDTO
// @Router       /api/admin/metrics/satisfaction [get]
func (h *MetricsHandler) Satisfaction(c *fiber.Ctx) error {
	out, err := h.uc.SatisfactionMetrics()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetReinvestment godoc
// @Summary      Actualizar porcentaje de reinversión (clamp 0-100)
// @Tags         metrics
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReinvestmentRequest  true  "Porcentaje"
// @Success      200   {object}  dto.ReinvestmentRequest
// @Router       /api/admin/metrics/reinvestment [put]
func (h *MetricsHandler) SetReinvestment(c *fiber.Ctx) error {
	var in dto.ReinvestmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	applied := h.uc.SetReinvestmentPercent(in.Percent)
	return c.JSON(dto.ReinvestmentRequest{Percent: applied})
}

// Report godoc
// @Summary      Reporte del negocio en PDF
// @Tags         metrics
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  byte
// @Router       /api/admin/metrics/report [get]
func (h *MetricsHandler) Report(c *fiber.Ctx) error {
	data, err := h.uc.BuildReport()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
	defer cancel()
	pdfBytes, err := h.generator.GenerateBusinessReport(ctx, *data)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-negocio.pdf"`)
	return c.Send(pdfBytes)
}
