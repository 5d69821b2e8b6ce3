package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/interfaces/tools"
	"github.com/rrizwan98/StoreLite-IMS-sub002/pkg/logger"
)

// ToolsHandler transporta el registro de tools sobre HTTP para el host de
// agentes. No contiene lógica propia: decodifica, delega al registro y
// serializa con el mismo sobre de error que los handlers REST.
type ToolsHandler struct {
	reg *tools.Registry
	log *logger.Logger
}

// NewToolsHandler construye el handler.
func NewToolsHandler(reg *tools.Registry, log *logger.Logger) *ToolsHandler {
	return &ToolsHandler{reg: reg, log: log}
}

// List godoc
// @Summary      Listar las tools disponibles
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Router       /tools [get]
func (h *ToolsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tools": h.reg.List()})
}

// Call godoc
// @Summary      Invocar una tool por nombre
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre de la tool"
// @Param        body  body  object  true  "Argumentos de la tool"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /tools/{name} [post]
func (h *ToolsHandler) Call(c *fiber.Ctx) error {
	name := c.Params("name")
	args := json.RawMessage(c.Body())
	if len(args) > 0 && !json.Valid(args) {
		return respondError(c, h.log, "tool:"+name, domain.NewValidationError("arguments", "argumentos JSON inválidos"))
	}
	out, err := h.reg.Call(c.Context(), name, args)
	if err != nil {
		return respondError(c, h.log, "tool:"+name, err)
	}
	return c.JSON(out)
}
