package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/application/venta"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/pkg/logger"
)

// VentaHandler maneja el registro y la consulta de ventas (protegido).
type VentaHandler struct {
	registrar *venta.RegistrarVentaUseCase
	consulta  *venta.ConsultaVentaUseCase
	log       *logger.Logger
}

// NewVentaHandler construye el handler.
func NewVentaHandler(registrar *venta.RegistrarVentaUseCase, consulta *venta.ConsultaVentaUseCase, log *logger.Logger) *VentaHandler {
	return &VentaHandler{registrar: registrar, consulta: consulta, log: log}
}

// Registrar registra una venta completa: valida, descuenta stock y deja el
// movimiento de inventario, todo en una sola transacción.
// POST /api/registrar-venta
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UsuarioID == 0 {
		in.UsuarioID = GetUserID(c)
	}

	result, err := h.registrar.RegistrarVenta(c.Context(), in)
	if err != nil {
		return h.mapRegistrarError(c, err)
	}
	return c.JSON(dto.Respuesta{Data: result})
}

// mapRegistrarError traduce los errores de dominio del registro de venta a HTTP.
func (h *VentaHandler) mapRegistrarError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrVentaVacia) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VENTA_VACIA", Message: "No hay productos en la venta."})
	}

	var noEncontrado *domain.ProductoNoEncontradoError
	if errors.As(err, &noEncontrado) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "PRODUCTO_NO_ENCONTRADO",
			Message: fmt.Sprintf("Producto con ID %d no encontrado.", noEncontrado.ProductoID),
		})
	}

	var sinStock *domain.StockInsuficienteError
	if errors.As(err, &sinStock) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "STOCK_INSUFICIENTE",
			Message: fmt.Sprintf("Stock insuficiente para el producto. Stock: %d, Solicitado: %d", sinStock.Disponible, sinStock.Solicitado),
		})
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}

	// Fallo de procesamiento: la transacción ya se revirtió. El detalle del paso
	// queda en los logs; al cliente se le responde un error opaco.
	var proc *domain.VentaProcesamientoError
	if errors.As(err, &proc) {
		h.log.Error().Err(proc.Err).Str("paso", proc.Paso).Msg("registro de venta revertido")
	} else {
		h.log.Error().Err(err).Msg("registro de venta fallido")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al procesar la venta"})
}

// List lista ventas paginadas, más recientes primero.
// GET /api/ventas
func (h *VentaHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 25)

	ventas, pagination, err := h.consulta.ListVentas(c.Context(), page, pageSize)
	if err != nil {
		h.log.Error().Err(err).Msg("listar ventas")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al listar ventas"})
	}
	return c.JSON(dto.Respuesta{Data: ventas, Meta: &dto.Meta{Pagination: pagination}})
}

// GetByID obtiene una venta con sus detalles.
// GET /api/ventas/:id
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	result, err := h.consulta.GetVenta(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		h.log.Error().Err(err).Int("venta_id", id).Msg("obtener venta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener la venta"})
	}
	return c.JSON(dto.Respuesta{Data: result})
}

// Recibo genera el recibo PDF de una venta.
// GET /api/ventas/:id/recibo
func (h *VentaHandler) Recibo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	pdfBytes, err := h.consulta.GenerarRecibo(c.Context(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		h.log.Error().Err(err).Int("venta_id", id).Msg("generar recibo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al generar el recibo"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-venta-%d.pdf"`, id))
	return c.Send(pdfBytes)
}
