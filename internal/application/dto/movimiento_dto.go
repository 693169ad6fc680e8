package dto

import "time"

// MovimientoResponse una entrada del log de movimientos de inventario.
type MovimientoResponse struct {
	ID              string    `json:"id"`
	ProductoID      int64     `json:"producto"`
	CantidadMovida  int64     `json:"cantidad_movida"`
	FechaMovimiento time.Time `json:"fecha_movimiento"`
	DescripcionMov  string    `json:"descripcion_mov"`
}
