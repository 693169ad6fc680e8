package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventapos-api/internal/application/auth"
	"github.com/jhoicas/ventapos-api/internal/application/usecase"
	"github.com/jhoicas/ventapos-api/internal/application/venta"
	"github.com/jhoicas/ventapos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegistrarVenta *venta.RegistrarVentaUseCase
	ConsultaVenta  *venta.ConsultaVentaUseCase
	ProductoUC     *usecase.ProductoUseCase
	CategoriaUC    *usecase.CategoriaUseCase
	MovimientoUC   *usecase.MovimientoUseCase
	DashboardUC    *usecase.DashboardUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/local", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/users/me", authHandler.Me)

	// Registro y consulta de ventas (protegido)
	ventaHandler := NewVentaHandler(deps.RegistrarVenta, deps.ConsultaVenta, deps.Log)
	protected.Post("/registrar-venta", ventaHandler.Registrar)
	ventas := protected.Group("/ventas")
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Get("/:id/recibo", ventaHandler.Recibo)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Categorías (protegido)
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Get("/:id", categoriaHandler.GetByID)

	// Log de movimientos de inventario (protegido)
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	protected.Get("/inventarios", movimientoHandler.List)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
