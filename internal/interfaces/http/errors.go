package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/pkg/logger"
)

// StatusForCode mapea el código del sobre de error al status HTTP.
// Lo usan las dos superficies (handlers REST y transporte de tools) para
// que un mismo error produzca exactamente la misma respuesta.
func StatusForCode(code string) int {
	switch code {
	case dto.CodeValidation:
		return fiber.StatusBadRequest
	case dto.CodeItemNotFound, dto.CodeBillNotFound:
		return fiber.StatusNotFound
	case dto.CodeInsufficientStock:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError traduce el error al sobre compartido y responde.
// Los errores de infraestructura se loguean con contexto completo; el
// caller solo recibe el mensaje genérico del sobre.
func respondError(c *fiber.Ctx, log *logger.Logger, op string, err error) error {
	resp := dto.NewErrorResponse(err)
	if resp.Error == dto.CodeDatabase && !errors.Is(err, domain.ErrTxTimeout) {
		log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("error de infraestructura")
	}
	return c.Status(StatusForCode(resp.Error)).JSON(resp)
}
