package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
// Los adaptadores los mapean al sobre de error {error, message, details}
// de forma estructural (errors.Is / errors.As), nunca por inspección de
// tipos en tiempo de ejecución.
var (
	ErrValidation        = errors.New("entrada inválida")
	ErrItemNotFound      = errors.New("artículo no encontrado")
	ErrBillNotFound      = errors.New("factura no encontrada")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDatabase          = errors.New("error de base de datos")
	// ErrTxTimeout indica que la espera por un bloqueo de fila superó el
	// límite del caller. Es reintentable: la transacción se revirtió completa.
	ErrTxTimeout = errors.New("transacción expirada esperando bloqueo de fila")
)

// ValidationError detalla los campos rechazados. Se produce antes de abrir
// la transacción; ningún bloqueo se toma con entrada inválida.
type ValidationError struct {
	Fields map[string]string // campo -> motivo
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, field+": "+reason)
	}
	return "entrada inválida: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError construye un ValidationError de un solo campo.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// ItemNotFoundError lista todos los item_id inexistentes (o inactivos)
// referenciados por una operación. El motor recolecta todas las líneas
// fallidas antes de decidir, no solo la primera.
type ItemNotFoundError struct {
	ItemIDs []string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("artículo(s) no encontrado(s): %s", strings.Join(e.ItemIDs, ", "))
}

func (e *ItemNotFoundError) Is(target error) bool { return target == ErrItemNotFound }

// LineShortfall describe el faltante de una línea: cuánto hay y cuánto se pidió.
type LineShortfall struct {
	ItemID    string
	Available decimal.Decimal
	Requested decimal.Decimal
}

// StockError lista todas las líneas con stock insuficiente de una factura.
// Cuando se produce, ninguna fila fue escrita: rollback completo.
type StockError struct {
	Lines []LineShortfall
}

func (e *StockError) Error() string {
	parts := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		parts = append(parts, fmt.Sprintf("%s (disponible %s, solicitado %s)", l.ItemID, l.Available, l.Requested))
	}
	return "stock insuficiente: " + strings.Join(parts, "; ")
}

func (e *StockError) Is(target error) bool { return target == ErrInsufficientStock }
