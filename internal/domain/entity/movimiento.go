package entity

import "time"

// MovimientoInventario representa una entrada del log de movimientos de stock.
// Registro append-only de auditoría: nunca se modifica ni se borra. CantidadMovida
// es negativa para salidas (ventas) y positiva para entradas o ajustes.
type MovimientoInventario struct {
	ID              string // uuid
	ProductoID      int64
	CantidadMovida  int64
	FechaMovimiento time.Time
	DescripcionMov  string // texto libre, referencia a la venta que lo originó
	CreatedAt       time.Time
}
