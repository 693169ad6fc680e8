package venta

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventapos-api/internal/application/dto"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

// RegistrarVentaUseCase registra una venta de forma transaccional: valida stock y
// existencia de productos, calcula el total con los precios capturados en la
// validación, y dentro de una sola transacción crea la cabecera, los detalles,
// descuenta stock (con bloqueo de fila) y registra los movimientos de inventario.
type RegistrarVentaUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
}

// NewRegistrarVentaUseCase construye el caso de uso.
func NewRegistrarVentaUseCase(txRunner TxRunner, productoRepo repository.ProductoRepository) *RegistrarVentaUseCase {
	return &RegistrarVentaUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
	}
}

// lineaValidada guarda el snapshot de precio y cantidad tomado durante la validación.
// El precio NO se vuelve a leer en la fase de escritura: cambios de precio entre
// validación y commit no afectan la venta en curso.
type lineaValidada struct {
	ProductoID     int64
	Cantidad       int64
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// RegistrarVenta valida y persiste una venta.
//
// Validación (antes de cualquier escritura, en el orden del request, fail-fast):
//  1. lista vacía -> ErrVentaVacia; cantidad <= 0 -> ErrInvalidInput
//  2. producto inexistente -> *ProductoNoEncontradoError
//  3. stock < cantidad -> *StockInsuficienteError (disponible vs solicitado)
//
// Escritura (una sola transacción; rollback completo ante cualquier fallo):
// crea la cabecera obteniendo su ID, y por cada línea bloquea la fila del producto
// (SELECT FOR UPDATE), re-verifica el stock fresco, persiste el detalle con el
// precio del snapshot, descuenta el stock y registra el movimiento con delta
// negativo referenciando la venta. La re-verificación dentro de la tx cierra la
// carrera de lost-update: dos ventas concurrentes del mismo producto se
// serializan en el lock y la segunda ve el stock ya descontado.
func (uc *RegistrarVentaUseCase) RegistrarVenta(ctx context.Context, in dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if len(in.ProductosVendidos) == 0 {
		return nil, domain.ErrVentaVacia
	}

	// Fase de validación: solo lecturas. Idempotente con el estado de la BD fijo.
	total := decimal.Zero
	lineas := make([]lineaValidada, 0, len(in.ProductosVendidos))
	for _, item := range in.ProductosVendidos {
		if item.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		producto, err := uc.productoRepo.GetByID(item.ID)
		if err != nil {
			return nil, fmt.Errorf("leer producto %d: %w", item.ID, err)
		}
		if producto == nil {
			return nil, &domain.ProductoNoEncontradoError{ProductoID: item.ID}
		}
		if producto.StockActual < item.Cantidad {
			return nil, &domain.StockInsuficienteError{
				ProductoID: item.ID,
				Disponible: producto.StockActual,
				Solicitado: item.Cantidad,
			}
		}
		subtotal := producto.PrecioVenta.Mul(decimal.NewFromInt(item.Cantidad))
		total = total.Add(subtotal)
		lineas = append(lineas, lineaValidada{
			ProductoID:     item.ID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: producto.PrecioVenta,
			Subtotal:       subtotal,
		})
	}

	now := time.Now()
	nuevaVenta := &entity.Venta{
		UsuarioID: in.UsuarioID,
		Total:     total,
		Fecha:     now,
		CreatedAt: now,
	}
	detallesCreados := make([]*entity.DetalleVenta, 0, len(lineas))

	err := uc.txRunner.Run(ctx, func(
		productoRepo repository.ProductoRepository,
		ventaRepo repository.VentaRepository,
		movRepo repository.MovimientoRepository,
	) error {
		// 1) Cabecera: obtiene el ID asignado (se usa como referencia en movimientos)
		if err := ventaRepo.Create(nuevaVenta); err != nil {
			return &domain.VentaProcesamientoError{Paso: "crear venta", Err: err}
		}

		for _, linea := range lineas {
			// 2a) Bloquea la fila del producto y re-verifica contra el stock fresco.
			// Una venta concurrente que ya descontó hace fallar esta re-verificación
			// y la transacción completa se revierte (el stock nunca queda negativo).
			producto, err := productoRepo.GetForUpdate(linea.ProductoID)
			if err != nil {
				return &domain.VentaProcesamientoError{Paso: "bloquear producto", Err: err}
			}
			if producto == nil {
				return &domain.ProductoNoEncontradoError{ProductoID: linea.ProductoID}
			}
			if producto.StockActual < linea.Cantidad {
				return &domain.StockInsuficienteError{
					ProductoID: linea.ProductoID,
					Disponible: producto.StockActual,
					Solicitado: linea.Cantidad,
				}
			}

			// 2b) Detalle con el precio del snapshot de validación
			detalle := &entity.DetalleVenta{
				VentaID:        nuevaVenta.ID,
				ProductoID:     linea.ProductoID,
				Cantidad:       linea.Cantidad,
				PrecioUnitario: linea.PrecioUnitario,
				Subtotal:       linea.Subtotal,
			}
			if err := ventaRepo.CreateDetalle(detalle); err != nil {
				return &domain.VentaProcesamientoError{Paso: "crear detalle", Err: err}
			}
			detallesCreados = append(detallesCreados, detalle)

			// 2c) Descuento de stock sobre la cantidad fresca leída bajo lock
			if err := productoRepo.UpdateStock(linea.ProductoID, producto.StockActual-linea.Cantidad); err != nil {
				return &domain.VentaProcesamientoError{Paso: "actualizar stock", Err: err}
			}

			// 2d) Movimiento de inventario con delta negativo
			mov := &entity.MovimientoInventario{
				ProductoID:      linea.ProductoID,
				CantidadMovida:  -linea.Cantidad,
				FechaMovimiento: now,
				DescripcionMov:  fmt.Sprintf("Venta registrada con ID: %d", nuevaVenta.ID),
				CreatedAt:       now,
			}
			if err := movRepo.Create(mov); err != nil {
				return &domain.VentaProcesamientoError{Paso: "registrar movimiento", Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toVentaResponse(nuevaVenta, detallesCreados), nil
}

func toVentaResponse(venta *entity.Venta, detalles []*entity.DetalleVenta) *dto.VentaResponse {
	out := &dto.VentaResponse{
		ID:      venta.ID,
		Usuario: venta.UsuarioID,
		Total:   venta.Total,
		Fecha:   venta.Fecha,
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.DetalleVentaResponse{
			ID:             d.ID,
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return out
}
