package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/billing"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/application/dto"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain/entity"
)

func seedBill(s *memStore, id string, createdAt time.Time, total string) {
	s.bills[id] = &entity.Bill{
		ID:          id,
		TotalAmount: decimal.RequireFromString(total),
		CreatedAt:   createdAt,
	}
}

func TestGetBill_NoExiste(t *testing.T) {
	ledger := billing.NewLedgerUseCase(&memBillRepo{store: newMemStore()})

	_, err := ledger.GetBill(context.Background(), "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBillNotFound)
}

func TestGetBill_IDVacio(t *testing.T) {
	ledger := billing.NewLedgerUseCase(&memBillRepo{store: newMemStore()})

	_, err := ledger.GetBill(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListBills_OrdenDescendenteYPaginacion(t *testing.T) {
	store := newMemStore()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedBill(store, "b1", base, "10.00")
	seedBill(store, "b2", base.Add(1*time.Hour), "20.00")
	seedBill(store, "b3", base.Add(2*time.Hour), "30.00")
	ledger := billing.NewLedgerUseCase(&memBillRepo{store: store})

	out, err := ledger.ListBills(context.Background(), dto.ListBillsRequest{
		PageRequest: dto.PageRequest{Page: 1, Limit: 2},
	})
	require.NoError(t, err)

	require.Len(t, out.Bills, 2)
	assert.Equal(t, "b3", out.Bills[0].ID, "más reciente primero")
	assert.Equal(t, "b2", out.Bills[1].ID)
	assert.Equal(t, 3, out.Page.Total)
	assert.Equal(t, 2, out.Page.TotalPages)

	out, err = ledger.ListBills(context.Background(), dto.ListBillsRequest{
		PageRequest: dto.PageRequest{Page: 2, Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, out.Bills, 1)
	assert.Equal(t, "b1", out.Bills[0].ID)
}

func TestListBills_RangoDeFechasInclusivo(t *testing.T) {
	store := newMemStore()
	seedBill(store, "viejo", time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC), "1.00")
	seedBill(store, "dentro", time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC), "2.00")
	seedBill(store, "limite", time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC), "3.00")
	seedBill(store, "fuera", time.Date(2026, 3, 12, 0, 0, 1, 0, time.UTC), "4.00")
	ledger := billing.NewLedgerUseCase(&memBillRepo{store: store})

	out, err := ledger.ListBills(context.Background(), dto.ListBillsRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-11",
	})
	require.NoError(t, err)

	require.Len(t, out.Bills, 2)
	// end_date es inclusivo: una venta a las 23:59 del día final entra.
	assert.Equal(t, "limite", out.Bills[0].ID)
	assert.Equal(t, "dentro", out.Bills[1].ID)
}

func TestListBills_FechasInvalidas(t *testing.T) {
	ledger := billing.NewLedgerUseCase(&memBillRepo{store: newMemStore()})

	_, err := ledger.ListBills(context.Background(), dto.ListBillsRequest{StartDate: "10-03-2026"})
	require.Error(t, err)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "start_date")

	// end_date un día antes de start_date: inválido aunque el ajuste
	// inclusivo (+24h) deje ambos límites en el mismo instante.
	_, err = ledger.ListBills(context.Background(), dto.ListBillsRequest{
		StartDate: "2026-03-11",
		EndDate:   "2026-03-10",
	})
	require.Error(t, err)
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "end_date")

	// El mismo día en ambos extremos sí es un rango válido.
	_, err = ledger.ListBills(context.Background(), dto.ListBillsRequest{
		StartDate: "2026-03-10",
		EndDate:   "2026-03-10",
	})
	assert.NoError(t, err)
}

func TestListBills_PaginacionNormalizada(t *testing.T) {
	store := newMemStore()
	seedBill(store, "b1", time.Now(), "10.00")
	ledger := billing.NewLedgerUseCase(&memBillRepo{store: store})

	out, err := ledger.ListBills(context.Background(), dto.ListBillsRequest{
		PageRequest: dto.PageRequest{Page: 0, Limit: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Page.Page)
	assert.Equal(t, 20, out.Page.Limit)

	out, err = ledger.ListBills(context.Background(), dto.ListBillsRequest{
		PageRequest: dto.PageRequest{Page: 1, Limit: 500},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, out.Page.Limit, "limit se acota a 100")
}
