package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/catalog"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/pkg/logger"
)

// ItemHandler maneja las peticiones HTTP del catálogo (protegido).
type ItemHandler struct {
	uc  *catalog.UseCase
	log *logger.Logger
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *catalog.UseCase, log *logger.Logger) *ItemHandler {
	return &ItemHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Datos del artículo"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, "create_item", domain.NewValidationError("body", "cuerpo JSON inválido"))
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, "create_item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener artículo por ID (solo activos por defecto)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id                path   string  true   "ID del artículo"
// @Param        include_inactive  query  bool    false  "Incluir inactivos (auditoría)"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"), c.QueryBool("include_inactive", false))
	if err != nil {
		return respondError(c, h.log, "get_item", err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artículos con filtros y paginación
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        name      query  string  false  "Filtro por subcadena del nombre"
// @Param        category  query  string  false  "Filtro por categoría"
// @Param        page      query  int     false  "Página"  default(1)
// @Param        limit     query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.ItemListResponse
// @Router       /items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var in dto.ListItemsRequest
	if err := c.QueryParser(&in); err != nil {
		return respondError(c, h.log, "list_items", domain.NewValidationError("query", "parámetros inválidos"))
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, "list_items", err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de un artículo
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del artículo"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, h.log, "update_item", domain.NewValidationError("body", "cuerpo JSON inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, "update_item", err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Baja lógica (soft delete, idempotente)
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /items/{id} [delete]
func (h *ItemHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, "deactivate_item", err)
	}
	return c.JSON(out)
}
