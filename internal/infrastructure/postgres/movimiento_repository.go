package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: solo INSERT y SELECT.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de inventario. Asigna un uuid si viene vacío.
func (r *MovimientoRepo) Create(m *entity.MovimientoInventario) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_inventario (id, producto_id, cantidad_movida, fecha_movimiento, descripcion_mov, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductoID, m.CantidadMovida, m.FechaMovimiento, m.DescripcionMov, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// ListByProducto lista movimientos de un producto, más recientes primero.
func (r *MovimientoRepo) ListByProducto(productoID int64, limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT id, producto_id, cantidad_movida, fecha_movimiento, descripcion_mov, created_at
		FROM movimientos_inventario WHERE producto_id = $1
		ORDER BY fecha_movimiento DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos por producto: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

// List lista movimientos de todos los productos, más recientes primero.
func (r *MovimientoRepo) List(limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT id, producto_id, cantidad_movida, fecha_movimiento, descripcion_mov, created_at
		FROM movimientos_inventario
		ORDER BY fecha_movimiento DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	return scanMovimientos(rows)
}

func scanMovimientos(rows pgx.Rows) ([]*entity.MovimientoInventario, error) {
	var list []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.CantidadMovida, &m.FechaMovimiento, &m.DescripcionMov, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
