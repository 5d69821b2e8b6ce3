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
)

var _ repository.BillRepository = (*BillRepo)(nil)

// BillRepo implementación de BillRepository (usable con pool o tx).
// Append-only: el puerto no define Update ni Delete para facturas.
type BillRepo struct {
	q Querier
}

// NewBillRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRepository(q Querier) *BillRepo {
	return &BillRepo{q: q}
}

// Create persiste la cabecera de la factura.
func (r *BillRepo) Create(ctx context.Context, bill *entity.Bill) error {
	query := `
		INSERT INTO bills (id, customer_name, store_name, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		bill.ID, nullIfEmpty(bill.CustomerName), nullIfEmpty(bill.StoreName),
		bill.TotalAmount, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// CreateLine persiste una línea snapshot.
func (r *BillRepo) CreateLine(ctx context.Context, line *entity.BillLine) error {
	query := `
		INSERT INTO bill_lines (id, bill_id, item_id, item_name, unit_price, quantity, line_total, line_no)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.BillID, line.ItemID, line.ItemName,
		line.UnitPrice, line.Quantity, line.LineTotal, line.LineNo,
	)
	if err != nil {
		return fmt.Errorf("insert bill line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura; nil si no existe.
func (r *BillRepo) GetByID(ctx context.Context, id string) (*entity.Bill, error) {
	query := `
		SELECT id, COALESCE(customer_name, ''), COALESCE(store_name, ''), total_amount, created_at
		FROM bills WHERE id = $1`
	var b entity.Bill
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.CustomerName, &b.StoreName, &b.TotalAmount, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return &b, nil
}

// GetLinesByBillID obtiene todas las líneas de una factura en su orden original.
func (r *BillRepo) GetLinesByBillID(ctx context.Context, billID string) ([]*entity.BillLine, error) {
	query := `
		SELECT id, bill_id, item_id, item_name, unit_price, quantity, line_total, line_no
		FROM bill_lines WHERE bill_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("list bill lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.BillLine
	for rows.Next() {
		var l entity.BillLine
		if err := rows.Scan(&l.ID, &l.BillID, &l.ItemID, &l.ItemName,
			&l.UnitPrice, &l.Quantity, &l.LineTotal, &l.LineNo); err != nil {
			return nil, fmt.Errorf("scan bill line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List cabeceras por rango de fechas, más reciente primero, con total.
func (r *BillRepo) List(ctx context.Context, f repository.BillFilter) ([]*entity.Bill, int, error) {
	var conds []string
	var args []any
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, "created_at >= $"+strconv.Itoa(len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, "created_at < $"+strconv.Itoa(len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM bills"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bills: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := `SELECT id, COALESCE(customer_name, ''), COALESCE(store_name, ''), total_amount, created_at FROM bills` +
		where + " ORDER BY created_at DESC, id LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var list []*entity.Bill
	for rows.Next() {
		var b entity.Bill
		if err := rows.Scan(&b.ID, &b.CustomerName, &b.StoreName, &b.TotalAmount, &b.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, &b)
	}
	return list, total, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
