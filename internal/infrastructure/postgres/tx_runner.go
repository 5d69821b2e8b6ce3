package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/billing"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/repository"
)

// Ensure TxRunner implements billing.TxRunner.
var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBilling inicia una transacción, ejecuta fn con los repos de catálogo y
// ledger atados a la tx y hace Commit o Rollback. El Rollback diferido es
// inocuo después de un Commit exitoso; una cancelación del caller que
// llegue con el Commit ya emitido no intenta revertir nada.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	billRepo repository.BillRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	billRepo := NewBillRepository(tx)

	if err := fn(itemRepo, billRepo); err != nil {
		if IsLockTimeout(err) {
			return fmt.Errorf("%w: %v", domain.ErrTxTimeout, err)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
