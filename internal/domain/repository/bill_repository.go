package repository

import (
	"context"
	"time"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
)

// BillFilter filtros para listar facturas del ledger.
// Las fechas acotan created_at; To es inclusivo (fin del día).
type BillFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// BillRepository define el puerto de persistencia para el ledger de ventas.
// Es append-only a propósito: no existe Update ni Delete, la inmutabilidad
// de las facturas se impone por omisión en el puerto, no por convención.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	CreateLine(ctx context.Context, line *entity.BillLine) error
	GetByID(ctx context.Context, id string) (*entity.Bill, error)
	GetLinesByBillID(ctx context.Context, billID string) ([]*entity.BillLine, error)
	// List retorna cabeceras ordenadas por created_at descendente más el
	// total de facturas que satisfacen el filtro.
	List(ctx context.Context, f BillFilter) ([]*entity.Bill, int, error)
}
