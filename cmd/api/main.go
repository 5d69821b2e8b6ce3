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
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/billing"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/catalog"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/infrastructure/postgres"
	httpRouter "github.com/rrizwan98/StoreLite-IMS-sub002/internal/interfaces/http"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/interfaces/tools"
	"github.com/rrizwan98/StoreLite-IMS-sub002/pkg/config"
	"github.com/rrizwan98/StoreLite-IMS-sub002/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.Engine.LockTimeout())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	itemRepo := postgres.NewItemRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewUseCase(itemRepo)
	createBillUC := billing.NewCreateBillUseCase(txRunner, cfg.Engine.LockTimeout())
	ledgerUC := billing.NewLedgerUseCase(billRepo)

	registry := tools.NewRegistry()
	tools.RegisterInventoryTools(registry, catalogUC)
	tools.RegisterBillingTools(registry, createBillUC, ledgerUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// El middleware lee el archivo al montarse y entra en pánico si falta,
	// así que solo se monta cuando el archivo existe.
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "StoreLite API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		CreateBill: createBillUC,
		Ledger:     ledgerUC,
		Tools:      registry,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
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
