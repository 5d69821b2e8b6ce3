package dto

import (
	"errors"
	"time"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/shopspring/decimal"
)

// PageRequest paginación para listados (basada en página, no en offset).
type PageRequest struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// Normalize aplica valores por defecto y límites: page>=1, limit en [1,100].
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset deriva el offset SQL de la página normalizada.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPageResponse calcula los metadatos a partir del total de filas.
func NewPageResponse(page, limit, total int) PageResponse {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return PageResponse{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// ErrorResponse es el sobre de error compartido por ambos adaptadores
// (HTTP y tools): {error, message, details}. Details siempre presente,
// vacío si no aplica, para que los cuerpos sean byte-equivalentes.
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}

// Códigos de error del contrato externo.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeItemNotFound      = "ITEM_NOT_FOUND"
	CodeBillNotFound      = "BILL_NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeDatabase          = "DATABASE_ERROR"
)

// NewErrorResponse traduce un error de dominio al sobre externo.
// Es el único punto de mapeo: los dos adaptadores lo comparten, así que la
// paridad de los cuerpos de error queda garantizada por construcción.
// Los errores de infraestructura nunca exponen el texto interno; el caller
// debe loguearlos con contexto completo antes de responder.
func NewErrorResponse(err error) ErrorResponse {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make(map[string]interface{}, len(vErr.Fields))
		for k, v := range vErr.Fields {
			fields[k] = v
		}
		return ErrorResponse{
			Error:   CodeValidation,
			Message: "entrada inválida",
			Details: map[string]interface{}{"fields": fields},
		}
	}

	var nfErr *domain.ItemNotFoundError
	if errors.As(err, &nfErr) {
		ids := make([]interface{}, 0, len(nfErr.ItemIDs))
		for _, id := range nfErr.ItemIDs {
			ids = append(ids, id)
		}
		return ErrorResponse{
			Error:   CodeItemNotFound,
			Message: "uno o más artículos no existen o están inactivos",
			Details: map[string]interface{}{"item_ids": ids},
		}
	}

	var stockErr *domain.StockError
	if errors.As(err, &stockErr) {
		lines := make([]interface{}, 0, len(stockErr.Lines))
		for _, l := range stockErr.Lines {
			lines = append(lines, map[string]interface{}{
				"item_id":   l.ItemID,
				"available": Quantity(l.Available),
				"requested": Quantity(l.Requested),
			})
		}
		return ErrorResponse{
			Error:   CodeInsufficientStock,
			Message: "stock insuficiente para una o más líneas",
			Details: map[string]interface{}{"lines": lines},
		}
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return ErrorResponse{Error: CodeValidation, Message: "entrada inválida", Details: map[string]interface{}{}}
	case errors.Is(err, domain.ErrItemNotFound):
		return ErrorResponse{Error: CodeItemNotFound, Message: "artículo no encontrado", Details: map[string]interface{}{}}
	case errors.Is(err, domain.ErrBillNotFound):
		return ErrorResponse{Error: CodeBillNotFound, Message: "factura no encontrada", Details: map[string]interface{}{}}
	case errors.Is(err, domain.ErrTxTimeout):
		return ErrorResponse{
			Error:   CodeDatabase,
			Message: "la transacción expiró esperando un bloqueo de fila; reintente",
			Details: map[string]interface{}{"retryable": true},
		}
	}

	// Error de infraestructura: mensaje genérico, sin texto interno.
	return ErrorResponse{Error: CodeDatabase, Message: "error interno de base de datos", Details: map[string]interface{}{}}
}

// Money serializa un monto como string decimal con 2 decimales fijos ("160.50").
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Quantity serializa una cantidad como número plano.
func Quantity(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// Timestamp serializa un instante como ISO-8601 en UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
