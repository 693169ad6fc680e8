package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventapos-api/internal/application/venta"
	"github.com/jhoicas/ventapos-api/internal/domain"
	"github.com/jhoicas/ventapos-api/internal/domain/entity"
	"github.com/jhoicas/ventapos-api/internal/domain/repository"
	apphttp "github.com/jhoicas/ventapos-api/internal/interfaces/http"
	"github.com/jhoicas/ventapos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el handler (sin DB)
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error { r.productos[p.ID] = p; return nil }

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) { return r.GetByID(id) }

func (r *fakeProductoRepo) UpdateStock(id int64, stock int64) error {
	p, ok := r.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockActual = stock
	return nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error { r.productos[p.ID] = p; return nil }

func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) { return nil, nil }
func (r *fakeProductoRepo) Count() (int, error)                                { return len(r.productos), nil }
func (r *fakeProductoRepo) Delete(id int64) error                              { delete(r.productos, id); return nil }

type fakeVentaRepo struct {
	seq        int64
	ventas     map[int64]*entity.Venta
	detalles   []*entity.DetalleVenta
	failCreate bool
}

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	if r.failCreate {
		return assert.AnError
	}
	r.seq++
	v.ID = r.seq
	r.ventas[v.ID] = v
	return nil
}

func (r *fakeVentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	d.ID = int64(len(r.detalles) + 1)
	r.detalles = append(r.detalles, d)
	return nil
}

func (r *fakeVentaRepo) GetByID(id int64) (*entity.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (r *fakeVentaRepo) ListDetalles(ventaID int64) ([]*entity.DetalleVenta, error) {
	var out []*entity.DetalleVenta
	for _, d := range r.detalles {
		if d.VentaID == ventaID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeVentaRepo) List(limit, offset int) ([]*entity.Venta, error) { return nil, nil }
func (r *fakeVentaRepo) Count() (int, error)                             { return len(r.ventas), nil }

type fakeMovRepo struct {
	movimientos []*entity.MovimientoInventario
}

func (r *fakeMovRepo) Create(m *entity.MovimientoInventario) error {
	r.movimientos = append(r.movimientos, m)
	return nil
}

func (r *fakeMovRepo) ListByProducto(productoID int64, limit, offset int) ([]*entity.MovimientoInventario, error) {
	return nil, nil
}
func (r *fakeMovRepo) List(limit, offset int) ([]*entity.MovimientoInventario, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

type ventaTestEnv struct {
	app          *fiber.App
	productoRepo *fakeProductoRepo
	ventaRepo    *fakeVentaRepo
	movRepo      *fakeMovRepo
}

func newVentaTestEnv(t *testing.T) *ventaTestEnv {
	t.Helper()

	env := &ventaTestEnv{
		productoRepo: &fakeProductoRepo{productos: map[int64]*entity.Producto{}},
		ventaRepo:    &fakeVentaRepo{ventas: map[int64]*entity.Venta{}},
		movRepo:      &fakeMovRepo{},
	}

	registrar := venta.NewRegistrarVentaUseCase(env, env.productoRepo)
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	app := fiber.New()
	handler := apphttp.NewVentaHandler(registrar, nil, log)
	app.Post("/api/registrar-venta", handler.Registrar)

	env.app = app
	return env
}

// Run implementa venta.TxRunner sobre los fakes del entorno, sin transacción real.
func (env *ventaTestEnv) Run(_ context.Context, fn func(repository.ProductoRepository, repository.VentaRepository, repository.MovimientoRepository) error) error {
	return fn(env.productoRepo, env.ventaRepo, env.movRepo)
}

func (env *ventaTestEnv) seedProducto(id int64, stock int64, precio string) {
	env.productoRepo.productos[id] = &entity.Producto{
		ID:          id,
		Nombre:      "Producto de prueba",
		PrecioVenta: decimal.RequireFromString(precio),
		StockActual: stock,
		Estado:      true,
	}
}

func postVenta(t *testing.T, app *fiber.App, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/registrar-venta", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/registrar-venta
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarVentaHandler_Exito_Retorna200ConEnvelope(t *testing.T) {
	env := newVentaTestEnv(t)
	env.seedProducto(1, 10, "25.00")

	resp := postVenta(t, env.app, fiber.Map{
		"usuarioId": 7,
		"productosVendidos": []fiber.Map{
			{"id": 1, "cantidad": 3},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data struct {
			ID       int64           `json:"id"`
			Usuario  int64           `json:"usuario"`
			Total    decimal.Decimal `json:"total"`
			Detalles []struct {
				ProductoID int64           `json:"producto"`
				Cantidad   int64           `json:"cantidad"`
				Subtotal   decimal.Decimal `json:"subtotal"`
			} `json:"detalle_ventas"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(7), out.Data.Usuario)
	assert.True(t, decimal.RequireFromString("75.00").Equal(out.Data.Total),
		"total debe ser 3 x 25.00")
	require.Len(t, out.Data.Detalles, 1)
	assert.Equal(t, int64(1), out.Data.Detalles[0].ProductoID)
	assert.Equal(t, int64(3), out.Data.Detalles[0].Cantidad)

	// Efectos: stock descontado y movimiento registrado
	p, _ := env.productoRepo.GetByID(1)
	assert.Equal(t, int64(7), p.StockActual)
	require.Len(t, env.movRepo.movimientos, 1)
	assert.Equal(t, int64(-3), env.movRepo.movimientos[0].CantidadMovida)
}

func TestRegistrarVentaHandler_VentaVacia_Retorna400(t *testing.T) {
	env := newVentaTestEnv(t)

	resp := postVenta(t, env.app, fiber.Map{
		"usuarioId":         7,
		"productosVendidos": []fiber.Map{},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "No hay productos en la venta.")
}

func TestRegistrarVentaHandler_ProductoInexistente_Retorna404(t *testing.T) {
	env := newVentaTestEnv(t)
	env.seedProducto(1, 10, "25.00")

	resp := postVenta(t, env.app, fiber.Map{
		"usuarioId": 7,
		"productosVendidos": []fiber.Map{
			{"id": 99, "cantidad": 1},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "Producto con ID 99 no encontrado.")
}

func TestRegistrarVentaHandler_StockInsuficiente_Retorna400ConDetalle(t *testing.T) {
	env := newVentaTestEnv(t)
	env.seedProducto(1, 5, "25.00")

	resp := postVenta(t, env.app, fiber.Map{
		"usuarioId": 7,
		"productosVendidos": []fiber.Map{
			{"id": 1, "cantidad": 10},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := bodyString(t, resp)
	assert.Contains(t, body, "Stock: 5")
	assert.Contains(t, body, "Solicitado: 10")

	// Sin efectos: el stock no se toca
	p, _ := env.productoRepo.GetByID(1)
	assert.Equal(t, int64(5), p.StockActual)
}

func TestRegistrarVentaHandler_CantidadInvalida_Retorna400(t *testing.T) {
	env := newVentaTestEnv(t)
	env.seedProducto(1, 10, "25.00")

	resp := postVenta(t, env.app, fiber.Map{
		"usuarioId": 7,
		"productosVendidos": []fiber.Map{
			{"id": 1, "cantidad": 0},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegistrarVentaHandler_FalloDeEscritura_Retorna500Opaco(t *testing.T) {
	env := newVentaTestEnv(t)
	env.seedProducto(1, 10, "25.00")
	env.ventaRepo.failCreate = true

	resp := postVenta(t, env.app, fiber.Map{
		"usuarioId": 7,
		"productosVendidos": []fiber.Map{
			{"id": 1, "cantidad": 1},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := bodyString(t, resp)
	assert.Contains(t, body, "INTERNAL")
	assert.NotContains(t, body, assert.AnError.Error(),
		"el detalle del fallo interno no debe filtrarse al cliente")
}

func TestRegistrarVentaHandler_BodyMalformado_Retorna400(t *testing.T) {
	env := newVentaTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/registrar-venta", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
