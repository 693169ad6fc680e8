package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/application/usecase"
)

// MovimientoHandler expone el log de movimientos de inventario (protegido, solo lectura).
type MovimientoHandler struct {
	uc *usecase.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// List lista movimientos, opcionalmente filtrados por producto.
// GET /api/inventarios?producto=<id>
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 25)
	productoID := int64(c.QueryInt("producto", 0))

	movimientos, err := h.uc.List(productoID, page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al listar movimientos"})
	}
	return c.JSON(dto.Respuesta{Data: movimientos})
}
