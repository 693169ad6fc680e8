package venta

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// ConsultaVentaUseCase consultas de solo lectura sobre ventas registradas
// y generación del recibo PDF.
type ConsultaVentaUseCase struct {
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	pdfGenerator ReciboPDFGenerator
}

// NewConsultaVentaUseCase construye el caso de uso.
func NewConsultaVentaUseCase(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	pdfGenerator ReciboPDFGenerator,
) *ConsultaVentaUseCase {
	return &ConsultaVentaUseCase{
		ventaRepo:    ventaRepo,
		productoRepo: productoRepo,
		pdfGenerator: pdfGenerator,
	}
}

// GetVenta devuelve la cabecera con sus detalles, o ErrNotFound.
func (uc *ConsultaVentaUseCase) GetVenta(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.ListDetalles(id)
	if err != nil {
		return nil, err
	}
	return toVentaResponse(v, detalles), nil
}

// ListVentas lista ventas paginadas (solo cabeceras).
func (uc *ConsultaVentaUseCase) ListVentas(ctx context.Context, page, pageSize int) ([]dto.VentaResponse, *dto.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 25
	}
	offset := (page - 1) * pageSize
	ventas, err := uc.ventaRepo.List(pageSize, offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.ventaRepo.Count()
	if err != nil {
		return nil, nil, err
	}
	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, *toVentaResponse(v, nil))
	}
	return out, dto.NewPagination(page, pageSize, total), nil
}

// GenerarRecibo genera el PDF del recibo de una venta (ticket con líneas y total).
func (uc *ConsultaVentaUseCase) GenerarRecibo(ctx context.Context, id int64) ([]byte, error) {
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.ListDetalles(id)
	if err != nil {
		return nil, err
	}
	lineas := make([]DetalleParaRecibo, 0, len(detalles))
	for _, d := range detalles {
		nombre := fmt.Sprintf("Producto %d", d.ProductoID)
		if p, err := uc.productoRepo.GetByID(d.ProductoID); err == nil && p != nil {
			nombre = p.Nombre
		}
		lineas = append(lineas, DetalleParaRecibo{Detalle: d, NombreProducto: nombre})
	}
	return uc.pdfGenerator.GenerateReciboPDF(ctx, v, lineas)
}
