package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/supplychain-console/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/supplychain-console/internal/interfaces/http"
	"github.com/tu-usuario/supplychain-console/pkg/config"
	"github.com/tu-usuario/supplychain-console/pkg/logger"
	"github.com/tu-usuario/supplychain-console/web"
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
		Msg("iniciando consola")

	// El proveedor no abre conexión aquí: cada petición adquiere y libera
	// la suya, y los errores de conexión se reportan en pantalla vía flash.
	db := postgres.NewProvider(cfg.DB)

	customerRepo := postgres.NewCustomerRepository(db)
	productRepo := postgres.NewProductRepository(db)
	manufacturerRepo := postgres.NewManufacturerRepository(db)
	supplierRepo := postgres.NewSupplierRepository(db)
	warehouseRepo := postgres.NewWarehouseRepository(db)
	vehicleRepo := postgres.NewVehicleRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        web.Engine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: httpRouter.EncryptionKey(cfg.App.SecretKey),
	}))
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Customers:     customerRepo,
		Products:      productRepo,
		Manufacturers: manufacturerRepo,
		Suppliers:     supplierRepo,
		Warehouses:    warehouseRepo,
		Vehicles:      vehicleRepo,
		Orders:        orderRepo,
		Reports:       reportRepo,
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

	acquired, released := db.Stats()
	log.Info().
		Int64("acquired", acquired).
		Int64("released", released).
		Msg("consola detenida")
}
