package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/billing"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/pkg/logger"
)

// BillHandler maneja las peticiones HTTP de facturación (protegido).
// Solo existen creación y lectura: el ledger no tiene endpoints de mutación.
type BillHandler struct {
	engine *billing.CreateBillUseCase
	ledger *billing.LedgerUseCase
	log    *logger.Logger
}

// NewBillHandler construye el handler.
func NewBillHandler(engine *billing.CreateBillUseCase, ledger *billing.LedgerUseCase, log *logger.Logger) *BillHandler {
	return &BillHandler{engine: engine, ledger: ledger, log: log}
}

// Create godoc
// @Summary      Confirmar una venta multi-línea (atómica)
// @Tags         bills
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBillRequest  true  "Líneas de la venta"
// @Success      201   {object}  dto.BillResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /bills [post]
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBillRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, "create_bill", domain.NewValidationError("body", "cuerpo JSON inválido"))
	}
	start := time.Now()
	out, err := h.engine.CreateBill(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, "create_bill", err)
	}
	h.log.Info().
		Str("bill_id", out.ID).
		Str("total", out.TotalAmount).
		Int("lines", len(out.Lines)).
		Dur("elapsed", time.Since(start)).
		Str("user_id", GetUserID(c)).
		Msg("venta confirmada")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener una factura con todas sus líneas
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.BillResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /bills/{id} [get]
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.ledger.GetBill(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, "get_bill", err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar facturas (más reciente primero)
// @Tags         bills
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD (inclusivo)"
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.BillListResponse
// @Router       /bills [get]
func (h *BillHandler) List(c *fiber.Ctx) error {
	var in dto.ListBillsRequest
	if err := c.QueryParser(&in); err != nil {
		return respondError(c, h.log, "list_bills", domain.NewValidationError("query", "parámetros inválidos"))
	}
	out, err := h.ledger.ListBills(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, "list_bills", err)
	}
	return c.JSON(out)
}
