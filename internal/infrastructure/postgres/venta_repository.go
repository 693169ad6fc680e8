package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL (usable con pool o tx).
// Ventas y detalles son append-only: no hay Update ni Delete.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera y asigna venta.ID (RETURNING id).
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (usuario_id, total, fecha, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.UsuarioID, v.Total, v.Fecha, v.CreatedAt,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de venta y asigna su ID.
func (r *VentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	query := `
		INSERT INTO detalle_ventas (venta_id, producto_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		d.VentaID, d.ProductoID, d.Cantidad, d.PrecioUnitario, d.Subtotal,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert detalle venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID, o nil si no existe.
func (r *VentaRepo) GetByID(id int64) (*entity.Venta, error) {
	query := `SELECT id, usuario_id, total, fecha, created_at FROM ventas WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.UsuarioID, &v.Total, &v.Fecha, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// ListDetalles lista las líneas de una venta en orden de inserción.
func (r *VentaRepo) ListDetalles(ventaID int64) ([]*entity.DetalleVenta, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, subtotal
		FROM detalle_ventas WHERE venta_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.ID, &d.VentaID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista ventas (cabeceras) más recientes primero.
func (r *VentaRepo) List(limit, offset int) ([]*entity.Venta, error) {
	query := `
		SELECT id, usuario_id, total, fecha, created_at
		FROM ventas ORDER BY fecha DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.UsuarioID, &v.Total, &v.Fecha, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Count devuelve el total de ventas.
func (r *VentaRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM ventas`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ventas: %w", err)
	}
	return n, nil
}
