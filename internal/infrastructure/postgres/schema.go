package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Los CHECK respaldan en base de datos las invariantes del dominio:
// stock_qty y unit_price nunca negativos, cantidades de línea positivas.
// item_id en bill_lines es referencia débil (sin FK): la factura guarda
// snapshots autoritativos y debe sobrevivir a cualquier mutación posterior
// del artículo.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS items (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	unit        TEXT NOT NULL,
	unit_price  NUMERIC(12,2) NOT NULL CHECK (unit_price >= 0),
	stock_qty   NUMERIC(14,3) NOT NULL CHECK (stock_qty >= 0),
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_items_category ON items (category) WHERE is_active;

CREATE TABLE IF NOT EXISTS bills (
	id            UUID PRIMARY KEY,
	customer_name TEXT,
	store_name    TEXT,
	total_amount  NUMERIC(14,2) NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bills_created_at ON bills (created_at DESC);

CREATE TABLE IF NOT EXISTS bill_lines (
	id          UUID PRIMARY KEY,
	bill_id     UUID NOT NULL REFERENCES bills(id),
	item_id     UUID NOT NULL,
	item_name   TEXT NOT NULL,
	unit_price  NUMERIC(12,2) NOT NULL,
	quantity    NUMERIC(14,3) NOT NULL CHECK (quantity > 0),
	line_total  NUMERIC(14,2) NOT NULL,
	line_no     INT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bill_lines_bill_id ON bill_lines (bill_id);
`

// EnsureSchema crea las tablas si no existen. Se ejecuta al arranque.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
