package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/ventapos-api/internal/application/auth"
	"github.com/jhoicas/ventapos-api/internal/application/usecase"
	"github.com/jhoicas/ventapos-api/internal/application/venta"
	infrapdf "github.com/jhoicas/ventapos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ventapos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ventapos-api/internal/interfaces/http"
	"github.com/jhoicas/ventapos-api/pkg/config"
	"github.com/jhoicas/ventapos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registrarVentaUC := venta.NewRegistrarVentaUseCase(txRunner, productoRepo)

	// PDF: recibo de venta imprimible
	reciboGenerator := infrapdf.NewMarotoReciboGenerator(cfg.App.Name)
	consultaVentaUC := venta.NewConsultaVentaUseCase(ventaRepo, productoRepo, reciboGenerator)

	productoUC := usecase.NewProductoUseCase(productoRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VentaPOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegistrarVenta: registrarVentaUC,
		ConsultaVenta:  consultaVentaUC,
		ProductoUC:     productoUC,
		CategoriaUC:    categoriaUC,
		MovimientoUC:   movimientoUC,
		DashboardUC:    dashboardUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
