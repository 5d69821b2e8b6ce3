package repository

import (
	"context"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ItemFilter filtros para listar artículos del catálogo.
type ItemFilter struct {
	Name            string // subcadena, case-insensitive
	Category        string
	IncludeInactive bool // solo para auditoría; por defecto activos
	Limit           int
	Offset          int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Las implementaciones aceptan pool o tx; GetForUpdate y DecrementStock
// solo tienen sentido dentro de una transacción.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// Deactivate marca is_active=false. Idempotente: sobre un artículo ya
	// inactivo vuelve a retornar éxito sin segundo cambio de estado.
	Deactivate(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context, f ItemFilter) ([]*entity.Item, int, error)
	// GetForUpdate bloquea la fila del artículo (SELECT ... FOR UPDATE).
	// Retorna nil si el artículo no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
	// DecrementStock resta qty al stock del artículo. Solo el motor la llama,
	// siempre con la fila bloqueada y el stock ya validado.
	DecrementStock(ctx context.Context, id string, qty decimal.Decimal) error
}
