package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/billing"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/catalog"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/interfaces/tools"
	"github.com/rrizwan98/StoreLite-IMS-sub002/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *catalog.UseCase
	CreateBill *billing.CreateBillUseCase
	Ledger     *billing.LedgerUseCase
	Tools      *tools.Registry
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API. Las dos superficies (REST y tools)
// se montan sobre los mismos casos de uso.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público, para probes)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC, deps.Log)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Deactivate)

	// Bills (protegido; solo creación y lectura, el ledger es inmutable)
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.CreateBill, deps.Ledger, deps.Log)
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.GetByID)

	// Tools (protegido, superficie para el host de agentes)
	toolsGroup := protected.Group("/tools")
	toolsHandler := NewToolsHandler(deps.Tools, deps.Log)
	toolsGroup.Get("/", toolsHandler.List)
	toolsGroup.Post("/:name", toolsHandler.Call)
}
