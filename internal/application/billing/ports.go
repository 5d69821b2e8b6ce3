package billing

import (
	"context"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una única transacción de base de
// datos, entregando repositorios atados a esa transacción. Si fn retorna
// error se hace rollback completo; si retorna nil se hace commit.
// Toda la atomicidad del motor descansa en este contrato.
type TxRunner interface {
	RunBilling(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		billRepo repository.BillRepository,
	) error) error
}
