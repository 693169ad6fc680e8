package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrVentaVacia            = errors.New("no hay productos en la venta")
	ErrStockInsuficiente     = errors.New("stock insuficiente")
)

// ProductoNoEncontradoError identifica qué producto de la venta no existe.
// errors.Is(err, ErrNotFound) responde true.
type ProductoNoEncontradoError struct {
	ProductoID int64
}

func (e *ProductoNoEncontradoError) Error() string {
	return fmt.Sprintf("producto con ID %d no encontrado", e.ProductoID)
}

func (e *ProductoNoEncontradoError) Is(target error) bool {
	return target == ErrNotFound
}

// StockInsuficienteError reporta disponible vs solicitado para que el caller lo muestre.
// errors.Is(err, ErrStockInsuficiente) responde true.
type StockInsuficienteError struct {
	ProductoID int64
	Disponible int64
	Solicitado int64
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %d. Stock: %d, Solicitado: %d",
		e.ProductoID, e.Disponible, e.Solicitado)
}

func (e *StockInsuficienteError) Is(target error) bool {
	return target == ErrStockInsuficiente
}

// VentaProcesamientoError envuelve un fallo durante la fase de escritura de una venta,
// identificando el paso que falló (crear venta, crear detalle, actualizar stock,
// registrar movimiento). La transacción se revierte completa; al caller se le presenta
// como error interno y el detalle queda en los logs.
type VentaProcesamientoError struct {
	Paso string
	Err  error
}

func (e *VentaProcesamientoError) Error() string {
	return fmt.Sprintf("procesar venta (%s): %v", e.Paso, e.Err)
}

func (e *VentaProcesamientoError) Unwrap() error { return e.Err }
