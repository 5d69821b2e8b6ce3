package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = "id, name, category, unit, unit_price, stock_qty, is_active, created_at, updated_at"

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL
// (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Name, &it.Category, &it.Unit,
		&it.UnitPrice, &it.StockQty, &it.IsActive, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, category, unit, unit_price, stock_qty, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Unit,
		item.UnitPrice, item.StockQty, item.IsActive, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert item: id duplicado: %w", err)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID, activo o no. El filtro "solo activos
// por defecto" lo aplica el caso de uso, no el repositorio.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	item, err := scanItem(r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Update actualiza los campos mutables del artículo.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, category = $3, unit = $4, unit_price = $5, stock_qty = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Unit, item.UnitPrice, item.StockQty, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Deactivate baja lógica idempotente: el WHERE no filtra por is_active,
// así que repetir la operación vuelve a retornar la fila sin segundo
// cambio de estado (updated_at solo avanza cuando la fila estaba activa).
func (r *ItemRepo) Deactivate(ctx context.Context, id string) (*entity.Item, error) {
	query := `
		UPDATE items
		SET is_active = false,
		    updated_at = CASE WHEN is_active THEN now() ELSE updated_at END
		WHERE id = $1
		RETURNING ` + itemColumns
	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("deactivate item: %w", err)
	}
	return item, nil
}

// List lista artículos con filtros opcionales y paginación; retorna además
// el total de filas que satisfacen el filtro.
func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]*entity.Item, int, error) {
	var conds []string
	var args []any
	if !f.IncludeInactive {
		conds = append(conds, "is_active = true")
	}
	if f.Name != "" {
		args = append(args, "%"+f.Name+"%")
		conds = append(conds, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, "category = $"+strconv.Itoa(len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM items"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := "SELECT " + itemColumns + " FROM items" + where +
		" ORDER BY created_at DESC, id LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Unit,
			&it.UnitPrice, &it.StockQty, &it.IsActive, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, total, rows.Err()
}

// GetForUpdate bloquea la fila del artículo (SELECT ... FOR UPDATE) y la
// retorna; nil si no existe. El caller es responsable del orden global de
// bloqueo (item_id ascendente).
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	item, err := scanItem(r.q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return item, nil
}

// DecrementStock resta qty al stock. El CHECK (stock_qty >= 0) del esquema
// respalda en base de datos la validación que el motor ya hizo bajo bloqueo.
func (r *ItemRepo) DecrementStock(ctx context.Context, id string, qty decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE items SET stock_qty = stock_qty - $2, updated_at = now() WHERE id = $1`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("decrement stock: item %s no existe", id)
	}
	return nil
}
