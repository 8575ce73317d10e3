package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fiorellalancissi/Vittorea/internal/application/dto"
	"github.com/fiorellalancissi/Vittorea/internal/application/usecase"
)

// CatalogHandler expone marcas, líneas y presentaciones para los
// formularios del back-office. Las altas ocurren inline al crear productos.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Brands godoc
// @Summary      Listar marcas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BrandResponse
// @Router       /api/admin/brands [get]
func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	out, err := h.uc.ListBrands()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteBrand godoc
// @Summary      Eliminar marca (los productos pasan a "Sin marca")
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  int  true  "ID de la marca"
// @Success      204
// @Router       /api/admin/brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.DeleteBrand(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Lines godoc
// @Summary      Listar líneas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LineResponse
// @Router       /api/admin/lines [get]
func (h *CatalogHandler) Lines(c *fiber.Ctx) error {
	out, err := h.uc.ListLines()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Volumes godoc
// @Summary      Listar presentaciones en ml
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VolumeResponse
// @Router       /api/admin/volumes [get]
func (h *CatalogHandler) Volumes(c *fiber.Ctx) error {
	out, err := h.uc.ListVolumes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
